package flate

import "github.com/coreos/minideflate/internal/bitio"

const (
	blockStored  = 0
	blockFixed   = 1
	blockDynamic = 2
)

var fixedLiteralTable *huffmanTable
var fixedDistanceTable *huffmanTable

func init() {
	lengths := make([]int, 288)
	for i := 0; i <= 143; i++ {
		lengths[i] = 8
	}
	for i := 144; i <= 255; i++ {
		lengths[i] = 9
	}
	for i := 256; i <= 279; i++ {
		lengths[i] = 7
	}
	for i := 280; i <= 287; i++ {
		lengths[i] = 8
	}
	fixedLiteralTable = buildFixedTable(lengths)

	distLengths := make([]int, 30)
	for i := range distLengths {
		distLengths[i] = 5
	}
	fixedDistanceTable = buildFixedTable(distLengths)
}

// Decode decompresses a DEFLATE stream back into its original bytes,
// decoding blocks (stored, fixed or dynamic Huffman) until one with BFINAL
// set; BTYPE=11 fails with InvalidBlockType. Running out of input is
// reported as a CorruptInputError of kind EndOfInput. It never returns a
// partial result alongside an error.
func Decode(data []byte) ([]byte, error) {
	r := bitio.NewReader(data)
	var out []byte
	fail := func(err error) ([]byte, error) {
		if err == bitio.ErrEndOfInput {
			return nil, &CorruptInputError{Kind: EndOfInput, Offset: int64(r.Position())}
		}
		return nil, err
	}

	for {
		offset := int64(r.Position())
		bfinal, err := r.ReadBits(1, true)
		if err != nil {
			return fail(err)
		}
		btype, err := r.ReadBits(2, true)
		if err != nil {
			return fail(err)
		}

		switch btype {
		case blockStored:
			out, err = decodeStoredBlock(r, out)
		case blockFixed:
			out, err = decodeBlockBody(r, out, fixedLiteralTable, fixedDistanceTable)
		case blockDynamic:
			var lit, dist *huffmanTable
			lit, dist, err = readDynamicTables(r, offset)
			if err != nil {
				return fail(err)
			}
			out, err = decodeBlockBody(r, out, lit, dist)
		default:
			return nil, &CorruptInputError{Kind: InvalidBlockType, Offset: offset}
		}
		if err != nil {
			return fail(err)
		}

		if bfinal == 1 {
			return out, nil
		}
	}
}

// decodeStoredBlock handles BTYPE=00: after discarding any remaining bits
// in the current byte, it reads LEN/NLEN and then LEN literal bytes
// verbatim.
func decodeStoredBlock(r *bitio.Reader, out []byte) ([]byte, error) {
	r.AlignToByte()
	lenLo, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	lenHi, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	nlenLo, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	nlenHi, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	length := int(lenLo) | int(lenHi)<<8
	nlen := int(nlenLo) | int(nlenHi)<<8
	if length != nlen^0xFFFF {
		return nil, &CorruptInputError{Kind: InvalidTable, Offset: int64(r.Position())}
	}
	for i := 0; i < length; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// decodeBlockBody decodes the literal/length/distance symbol stream of a
// fixed or dynamic Huffman block using the given tables, stopping at the
// end-of-block symbol (256).
func decodeBlockBody(r *bitio.Reader, out []byte, lit, dist *huffmanTable) ([]byte, error) {
	for {
		offset := int64(r.Position())
		sym, err := decodeSymbol(r, lit, offset)
		if err != nil {
			return nil, err
		}

		switch {
		case sym < 256:
			out = append(out, byte(sym))
		case sym == 256:
			return out, nil
		default:
			if int(sym) > 285 {
				// Symbols 286/287 have assigned fixed codes but no defined
				// length; RFC 1951 §3.2.6 notes a conforming encoder never
				// emits them.
				return nil, &CorruptInputError{Kind: InvalidCode, Offset: offset}
			}
			lextraBits := lengthExtraBits[sym-257]
			var lextra uint16
			if lextraBits > 0 {
				lextra, err = r.ReadBits(lextraBits, true)
				if err != nil {
					return nil, err
				}
			}
			length := decodeLength(int(sym), lextra)

			dOffset := int64(r.Position())
			dsym, err := decodeSymbol(r, dist, dOffset)
			if err != nil {
				return nil, err
			}
			if int(dsym) >= len(distBase) {
				return nil, &CorruptInputError{Kind: InvalidCode, Offset: dOffset}
			}
			dextraBits := distExtraBits[dsym]
			var dextra uint16
			if dextraBits > 0 {
				dextra, err = r.ReadBits(dextraBits, true)
				if err != nil {
					return nil, err
				}
			}
			distance := decodeDistance(int(dsym), dextra)

			if distance > len(out) {
				return nil, &CorruptInputError{Kind: InvalidBackReference, Offset: dOffset}
			}
			// Copied byte by byte, never via a bulk copy: when distance <
			// length the reference overlaps itself and must replay bytes it
			// is still in the middle of producing.
			start := len(out) - distance
			for i := 0; i < length; i++ {
				out = append(out, out[start+i])
			}
		}
	}
}

// readDynamicTables parses a dynamic block header (RFC 1951 §3.2.7) and
// builds the literal/length and distance canonical tables it describes.
func readDynamicTables(r *bitio.Reader, offset int64) (lit, dist *huffmanTable, err error) {
	hlit, err := r.ReadBits(5, true)
	if err != nil {
		return nil, nil, err
	}
	hdist, err := r.ReadBits(5, true)
	if err != nil {
		return nil, nil, err
	}
	hclen, err := r.ReadBits(4, true)
	if err != nil {
		return nil, nil, err
	}

	numLit := int(hlit) + 257
	numDist := int(hdist) + 1
	numClen := int(hclen) + 4

	var clLengths [19]int
	for i := 0; i < numClen; i++ {
		v, err := r.ReadBits(3, true)
		if err != nil {
			return nil, nil, err
		}
		clLengths[codeLengthOrder[i]] = int(v)
	}
	clTable, err := buildCanonicalTable(clLengths[:], offset)
	if err != nil {
		return nil, nil, err
	}

	allLengths := make([]int, numLit+numDist)
	for i := 0; i < len(allLengths); {
		symOffset := int64(r.Position())
		sym, err := decodeSymbol(r, clTable, symOffset)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case sym <= 15:
			allLengths[i] = int(sym)
			i++
		case sym == 16:
			if i == 0 {
				return nil, nil, &CorruptInputError{Kind: InvalidTable, Offset: symOffset}
			}
			rep, err := r.ReadBits(2, true)
			if err != nil {
				return nil, nil, err
			}
			prev := allLengths[i-1]
			for n := int(rep) + 3; n > 0 && i < len(allLengths); n-- {
				allLengths[i] = prev
				i++
			}
		case sym == 17:
			rep, err := r.ReadBits(3, true)
			if err != nil {
				return nil, nil, err
			}
			for n := int(rep) + 3; n > 0 && i < len(allLengths); n-- {
				allLengths[i] = 0
				i++
			}
		case sym == 18:
			rep, err := r.ReadBits(7, true)
			if err != nil {
				return nil, nil, err
			}
			for n := int(rep) + 11; n > 0 && i < len(allLengths); n-- {
				allLengths[i] = 0
				i++
			}
		default:
			return nil, nil, &CorruptInputError{Kind: InvalidCode, Offset: symOffset}
		}
	}

	lit, err = buildCanonicalTable(allLengths[:numLit], offset)
	if err != nil {
		return nil, nil, err
	}
	dist, err = buildCanonicalTable(allLengths[numLit:], offset)
	if err != nil {
		return nil, nil, err
	}
	return lit, dist, nil
}
