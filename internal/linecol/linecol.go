// Package linecol resolves byte offsets into 1-based (line, column) pairs,
// the same lookup the original Rust editor adapter built on the line_col
// crate. Columns are counted in runes rather than grapheme clusters: the
// corpus carries no grapheme-segmentation dependency, and UE3 config files
// are expected to be ASCII/Latin-1 in practice.
package linecol

import "unicode/utf8"

// Lookup resolves byte offsets within a fixed text into (line, col) pairs.
// Both are 1-based, matching the original adapter's convention.
type Lookup struct {
	text       string
	lineStarts []int
}

// New builds a Lookup over text. Constructing it is O(n); each Get call
// afterward finds the line in O(log n) and then counts the runes between
// the line start and pos.
func New(text string) *Lookup {
	starts := []int{0}
	for i, b := range []byte(text) {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Lookup{text: text, lineStarts: starts}
}

// Get returns the 1-based (line, col) for byte offset pos. pos may equal
// len(text) to address one-past-the-end, as span endpoints do.
func (l *Lookup) Get(pos int) (line, col int) {
	idx := l.lineIndex(pos)
	lineStart := l.lineStarts[idx]
	col = utf8.RuneCountInString(l.text[lineStart:pos]) + 1
	return idx + 1, col
}

func (l *Lookup) lineIndex(pos int) int {
	lo, hi := 0, len(l.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if l.lineStarts[mid] <= pos {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
