package flate

import (
	"github.com/coreos/minideflate/internal/bitio"
	"github.com/coreos/minideflate/internal/lz77"
)

// Fixed Huffman code assignment, RFC 1951 §3.2.6: literal/length symbols
// 0-143 take 8 bits, 144-255 take 9 bits, 256-279 take 7 bits, 280-287 take
// 8 bits. Distance symbols all take 5 bits (and there are only 30 of them).
func fixedLiteralCode(symbol int) (code uint16, bits uint) {
	switch {
	case symbol <= 143:
		return uint16(0x030 + symbol), 8
	case symbol <= 255:
		return uint16(0x190 + (symbol - 144)), 9
	case symbol <= 279:
		return uint16(symbol - 256), 7
	default:
		return uint16(0x0C0 + (symbol - 280)), 8
	}
}

func fixedDistanceCode(symbol int) (code uint16, bits uint) {
	return uint16(symbol), 5
}

// FixedHuffmanEncoder compresses a single buffer into a one-block DEFLATE
// stream using BTYPE=01 (fixed Huffman codes). It drives an lz77.Matcher as
// its own Sink, translating each literal/match event directly into bits as
// it arrives rather than buffering symbols for a second pass -- there is
// only one Huffman table to pick from, so nothing is gained by deferring.
type FixedHuffmanEncoder struct {
	w *bitio.Writer
}

// NewFixedHuffmanEncoder returns an encoder ready to accept one Compress
// call.
func NewFixedHuffmanEncoder() *FixedHuffmanEncoder {
	return &FixedHuffmanEncoder{w: bitio.NewWriter()}
}

// Encode compresses input into a complete, byte-padded DEFLATE stream
// holding exactly one final fixed-Huffman block.
func Encode(input []byte) []byte {
	e := NewFixedHuffmanEncoder()
	e.w.WriteBits(1, 1, true) // BFINAL = 1
	e.w.WriteBits(1, 2, true) // BTYPE = 01 (fixed Huffman)

	m := lz77.NewMatcher()
	m.Compress(input, e)

	code, bits := fixedLiteralCode(256) // end-of-block symbol
	e.w.WriteBits(code, bits, false)
	e.w.AlignToByte()
	return e.w.Bytes()
}

// EmitLiteral implements lz77.Sink.
func (e *FixedHuffmanEncoder) EmitLiteral(b byte) {
	code, bits := fixedLiteralCode(int(b))
	e.w.WriteBits(code, bits, false)
}

// EmitMatch implements lz77.Sink.
func (e *FixedHuffmanEncoder) EmitMatch(length, distance int) {
	lcode, lextraBits, lextra := lengthToCode(length)
	code, bits := fixedLiteralCode(lcode)
	e.w.WriteBits(code, bits, false)
	if lextraBits > 0 {
		e.w.WriteBits(lextra, lextraBits, true)
	}

	dcode, dextraBits, dextra := distanceToCode(distance)
	dc, dbits := fixedDistanceCode(dcode)
	e.w.WriteBits(dc, dbits, false)
	if dextraBits > 0 {
		e.w.WriteBits(dextra, dextraBits, true)
	}
}
