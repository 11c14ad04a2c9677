// Package lz77 finds back-references within a sliding window, the first
// stage of the DEFLATE pipeline (RFC 1951 §4). It has no notion of Huffman
// codes or bitstreams; it only ever emits literal bytes and <length,
// distance> events to a Sink.
package lz77

const (
	// WindowSize is the maximum distance (in bytes) a back-reference may
	// point into already-processed input.
	WindowSize = 32768
	// MaxMatch is the longest back-reference DEFLATE can express.
	MaxMatch = 258
	// MinMatch is the shortest back-reference worth emitting; anything
	// shorter is cheaper as literals.
	MinMatch = 3
)

// Sink receives the literal/match events a Matcher produces.
type Sink interface {
	EmitLiteral(b byte)
	EmitMatch(length, distance int)
}

// Matcher finds 3-or-more-byte back-references within the trailing
// WindowSize bytes of whatever input it is given. It keeps a hash index
// from 3-byte key to the input offsets where that key was last seen; the
// window itself is never materialized separately, since it is always just
// the tail of the input slice already held by Compress's caller.
type Matcher struct {
	windowSize int
	lookahead  int
	positions  map[[3]byte][]int
}

// NewMatcher returns a Matcher configured with the DEFLATE window and
// lookahead maxima.
func NewMatcher() *Matcher {
	return &Matcher{
		windowSize: WindowSize,
		lookahead:  MaxMatch,
		positions:  make(map[[3]byte][]int),
	}
}

// Compress scans input once, left to right, emitting literals and matches
// to sink. It does not return an error: the matcher is infallible on
// well-formed byte input.
func (m *Matcher) Compress(input []byte, sink Sink) {
	n := len(input)
	for i := 0; i < n; {
		if i+3 > n {
			sink.EmitLiteral(input[i])
			i++
			continue
		}

		var key [3]byte
		copy(key[:], input[i:i+3])

		// The window has fully filled; prune offsets that fell out of it.
		// (i > windowSize would skip pruning exactly when i == windowSize;
		// the window is already full at that point.)
		if i >= m.windowSize {
			m.prune(i)
		}

		candidates, ok := m.positions[key]
		if !ok {
			sink.EmitLiteral(input[i])
			m.insert(key, i)
			i++
			continue
		}

		length, pos := m.longestMatch(input, i, candidates)
		if length < MinMatch {
			// Unreachable for a well-formed index: every candidate shares
			// the 3-byte key, so the match length is always >= MinMatch.
			sink.EmitLiteral(input[i])
			m.insert(key, i)
			i++
			continue
		}

		distance := i - pos
		sink.EmitMatch(length, distance)
		for k := i; k <= i+length-2 && k+3 <= n; k++ {
			var overlapKey [3]byte
			copy(overlapKey[:], input[k:k+3])
			m.insert(overlapKey, k)
		}
		i += length
	}
}

// longestMatch extends every candidate position forward and returns the
// length and position of the longest one. candidates is walked oldest
// (furthest, smallest position) first; a later, nearer candidate only
// displaces the current best on a strict length improvement, so on a tie
// the match found first wins. Per spec.md this is a permitted choice, not
// the nearest-wins tie-break a ratio-tuned matcher would prefer.
func (m *Matcher) longestMatch(input []byte, i int, candidates []int) (length, pos int) {
	n := len(input)
	maxLen := m.lookahead
	if i+maxLen > n {
		maxLen = n - i
	}
	for _, cand := range candidates {
		j := 0
		for j < maxLen && input[i+j] == input[cand+j] {
			j++
		}
		if j > length {
			length = j
			pos = cand
		}
	}
	return length, pos
}

func (m *Matcher) insert(key [3]byte, pos int) {
	m.positions[key] = append(m.positions[key], pos)
}

// prune drops any recorded offset that has fallen out of the sliding
// window, i.e. more than windowSize bytes behind current.
func (m *Matcher) prune(current int) {
	windowStart := current - m.windowSize
	for key, offsets := range m.positions {
		kept := offsets[:0]
		for _, p := range offsets {
			if p >= windowStart {
				kept = append(kept, p)
			}
		}
		if len(kept) == 0 {
			delete(m.positions, key)
		} else {
			m.positions[key] = kept
		}
	}
}
