package flate

import "strconv"

// Kind identifies which class of decode failure occurred. Every decode
// error is terminal: no partial output is ever returned alongside one.
type Kind int

const (
	// EndOfInput means the bit cursor advanced past the end of the input.
	EndOfInput Kind = iota
	// InvalidBlockType means BTYPE held the reserved value 11.
	InvalidBlockType
	// InvalidCode means no code in the active Huffman table matched the
	// bits read, even at the maximum code length.
	InvalidCode
	// InvalidTable means a code-length sequence did not describe a valid
	// canonical Huffman tree, or a stored block's LEN and NLEN fields were
	// not one's complements of each other.
	InvalidTable
	// InvalidBackReference means a back-reference's distance exceeded the
	// number of bytes decoded so far.
	InvalidBackReference
)

func (k Kind) String() string {
	switch k {
	case EndOfInput:
		return "end of input"
	case InvalidBlockType:
		return "invalid block type"
	case InvalidCode:
		return "invalid code"
	case InvalidTable:
		return "invalid table"
	case InvalidBackReference:
		return "invalid back reference"
	default:
		return "unknown flate error"
	}
}

// A CorruptInputError reports that decoding failed at a given bit offset in
// the input stream, along with the Kind of failure.
type CorruptInputError struct {
	Kind   Kind
	Offset int64 // bit offset into the input where the error occurred
}

func (e *CorruptInputError) Error() string {
	return "flate: " + e.Kind.String() + " at bit offset " + strconv.FormatInt(e.Offset, 10)
}

// An InternalError reports a bug in this package rather than bad input.
type InternalError string

func (e InternalError) Error() string { return "flate: internal error: " + string(e) }
