package flate

import "github.com/coreos/minideflate/internal/bitio"

// maxCodeLen is the longest Huffman code DEFLATE permits for any of its
// data alphabets (literal/length, distance, and code-length).
const maxCodeLen = 15

// huffmanTable is a canonical Huffman decode table: for each code length L,
// a map from the L-bit code value (MSB-first, the same order the code word
// is written on the wire) to the decoded symbol. This is the reference
// representation from RFC 1951 §3.2.2, not the packed chunk table; a flat
// bit-indexed table is an equivalent, purely representational, swap that
// production decoders make (see DESIGN.md).
type huffmanTable struct {
	byLength [maxCodeLen + 1]map[uint16]uint16
	maxLen   int
}

// buildCanonicalTable assigns canonical Huffman codes to symbols given
// their code lengths (0 meaning "not in the alphabet"), per RFC 1951
// §3.2.2: codes of a given length are assigned in ascending symbol order,
// and the smallest code at length L+1 is (smallest code at L + count at L)
// shifted left one bit. offset is the bit position to attribute to a
// validation failure.
//
// A code sequence transmitted in a dynamic block header must not be
// over-subscribed: summing 2^(maxLen-len) over every coded symbol must
// never exceed 2^maxLen, the total number of leaves available at the
// tree's depth. It is permitted to be under-subscribed (some codes at the
// deepest level simply unused) -- the fixed distance table built by
// assignCodes below is itself a standard example, using only 30 of the 32
// codes five bits can address.
func buildCanonicalTable(lengths []int, offset int64) (*huffmanTable, error) {
	t, blCount, maxLen, err := assignCodes(lengths)
	if err != nil {
		return nil, err
	}
	if maxLen == 0 {
		return t, nil
	}
	sum := 0
	for l := 1; l <= maxLen; l++ {
		sum += blCount[l] << uint(maxLen-l)
	}
	if sum > 1<<uint(maxLen) {
		return nil, &CorruptInputError{Kind: InvalidTable, Offset: offset}
	}
	return t, nil
}

// buildFixedTable assigns canonical codes for one of the two fixed tables
// RFC 1951 §3.2.6 defines. Their lengths are compile-time constants, not
// attacker-controlled input, so there is nothing to validate.
func buildFixedTable(lengths []int) *huffmanTable {
	t, _, _, err := assignCodes(lengths)
	if err != nil {
		panic(err)
	}
	return t
}

func assignCodes(lengths []int) (*huffmanTable, [maxCodeLen + 1]int, int, error) {
	var blCount [maxCodeLen + 1]int
	maxLen := 0
	for _, l := range lengths {
		if l == 0 {
			continue
		}
		if l < 0 || l > maxCodeLen {
			return nil, blCount, 0, InternalError("code length out of range")
		}
		blCount[l]++
		if l > maxLen {
			maxLen = l
		}
	}

	t := &huffmanTable{maxLen: maxLen}
	for l := 1; l <= maxCodeLen; l++ {
		t.byLength[l] = make(map[uint16]uint16)
	}
	if maxLen == 0 {
		return t, blCount, 0, nil
	}

	var nextCode [maxCodeLen + 1]int
	code := 0
	for bits := 1; bits <= maxLen; bits++ {
		code = (code + blCount[bits-1]) << 1
		nextCode[bits] = code
	}

	for symbol, l := range lengths {
		if l == 0 {
			continue
		}
		c := nextCode[l]
		nextCode[l]++
		t.byLength[l][uint16(c)] = uint16(symbol)
	}
	return t, blCount, maxLen, nil
}

// decodeSymbol reads one Huffman-coded symbol from r using t: it reads a
// single bit at a time, accumulating an MSB-first code value, and probes
// the length-indexed table after every bit until a code of that length
// matches.
func decodeSymbol(r *bitio.Reader, t *huffmanTable, offset int64) (uint16, error) {
	var code uint16
	for length := 1; length <= maxCodeLen; length++ {
		bit, err := r.ReadBits(1, false)
		if err != nil {
			return 0, err
		}
		code = code<<1 | bit
		if sym, ok := t.byLength[length][code]; ok {
			return sym, nil
		}
	}
	return 0, &CorruptInputError{Kind: InvalidCode, Offset: offset}
}
