package flate

import (
	"reflect"
	"testing"

	"github.com/coreos/minideflate/internal/bitio"
)

func TestBuildCanonicalTableRejectsOversubscribedTree(t *testing.T) {
	// Three symbols at length 1 would need three leaves where only two
	// (codes 0 and 1) exist at depth 1.
	_, err := buildCanonicalTable([]int{1, 1, 1}, 0)
	if err == nil {
		t.Fatalf("expected InvalidTable error for an over-subscribed tree")
	}
	cerr, ok := err.(*CorruptInputError)
	if !ok || cerr.Kind != InvalidTable {
		t.Fatalf("got %v, want *CorruptInputError{Kind: InvalidTable}", err)
	}
}

func TestBuildCanonicalTableAcceptsUndersubscribedTree(t *testing.T) {
	// One symbol at length 1 plus one at length 2 leaves a code unused
	// (the "11" leaf), which is a valid, merely incomplete, prefix code.
	tab, err := buildCanonicalTable([]int{1, 2, 0}, 0)
	if err != nil {
		t.Fatalf("unexpected error for an under-subscribed tree: %v", err)
	}
	if tab.maxLen != 2 {
		t.Fatalf("maxLen = %d, want 2", tab.maxLen)
	}
}

func TestBuildCanonicalTableAcceptsDegenerateSingleSymbol(t *testing.T) {
	// The minimum dynamic block: only symbol 256 is coded, at length 1.
	lengths := make([]int, 257)
	lengths[256] = 1
	tab, err := buildCanonicalTable(lengths, 0)
	if err != nil {
		t.Fatalf("unexpected error for degenerate single-symbol tree: %v", err)
	}
	if tab.maxLen != 1 {
		t.Fatalf("maxLen = %d, want 1", tab.maxLen)
	}
}

func TestBuildCanonicalTableAcceptsTwoEqualLengthSymbols(t *testing.T) {
	lengths := []int{1, 1}
	tab, err := buildCanonicalTable(lengths, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tab.byLength[1][0]; got != 0 {
		t.Errorf("symbol for code 0 = %d, want 0", got)
	}
	if got := tab.byLength[1][1]; got != 1 {
		t.Errorf("symbol for code 1 = %d, want 1", got)
	}
}

func TestCanonicalTableIdempotence(t *testing.T) {
	// RFC 1951 §3.2.2's own worked example.
	lengths := []int{3, 3, 3, 3, 3, 2, 4, 4}
	tab, err := buildCanonicalTable(lengths, 0)
	if err != nil {
		t.Fatalf("buildCanonicalTable: %v", err)
	}

	recovered := make([]int, len(lengths))
	for l := 1; l <= maxCodeLen; l++ {
		for _, sym := range tab.byLength[l] {
			recovered[sym] = l
		}
	}
	if !reflect.DeepEqual(recovered, lengths) {
		t.Fatalf("recovered lengths %v, want %v", recovered, lengths)
	}
}

func TestDecodeSymbolMatchesEncodedCodeWord(t *testing.T) {
	lengths := []int{3, 3, 3, 3, 3, 2, 4, 4}
	tab, err := buildCanonicalTable(lengths, 0)
	if err != nil {
		t.Fatalf("buildCanonicalTable: %v", err)
	}

	// Symbol 5 has code length 2 and is the only one, so its code is 0b00.
	w := bitio.NewWriter()
	w.WriteBits(0, 2, false)
	r := bitio.NewReader(w.Bytes())
	sym, err := decodeSymbol(r, tab, 0)
	if err != nil {
		t.Fatalf("decodeSymbol: %v", err)
	}
	if sym != 5 {
		t.Fatalf("got symbol %d, want 5", sym)
	}
}

func TestDecodeSymbolEmptyReaderFails(t *testing.T) {
	lengths := []int{1, 1} // only codes 0 and 1 at length 1 are valid
	tab, err := buildCanonicalTable(lengths, 0)
	if err != nil {
		t.Fatalf("buildCanonicalTable: %v", err)
	}
	r := bitio.NewReader([]byte{0xFF})
	// Length-1 table already covers both possible single bits, so this
	// particular table can't produce InvalidCode; use an empty reader
	// instead to exercise the end-of-input path through decodeSymbol.
	_ = r
	empty := bitio.NewReader(nil)
	if _, err := decodeSymbol(empty, tab, 0); err == nil {
		t.Fatalf("expected an error decoding from an empty reader")
	}
}
