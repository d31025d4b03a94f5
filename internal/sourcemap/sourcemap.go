// Package sourcemap turns the byte offsets a syntax.Span carries into
// human-facing line/column positions, for diagnostics and the CLI's
// text output. Columns are counted in grapheme clusters, not bytes or
// runes: a combining-character sequence or an emoji with a variation
// selector is one column wide to a reader, even though it spans several
// runes, so a naive rune count would misplace a caret under it.
//
// Uses uniseg.NewGraphemes to walk the text, the same grapheme walk a
// "how long is this string, as a human would read it" check would use,
// retargeted here from string length to a byte-offset-to-column lookup.
package sourcemap

import (
	"sort"

	"github.com/rivo/uniseg"
)

// Position is a 1-indexed line and grapheme-cluster column, the shape
// editors and terminals expect.
type Position struct {
	Line   int
	Column int
}

// Map resolves byte offsets into a source string to Positions. Building
// one does a single byte scan of the text for line starts; every
// subsequent lookup is a binary search plus a bounded grapheme count
// within the offset's line.
type Map struct {
	src        string
	lineStarts []int
}

// New indexes src's line boundaries. The source is kept by reference
// (not copied) since Map only ever reads substrings of it.
func New(src string) *Map {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Map{src: src, lineStarts: starts}
}

// Position resolves a byte offset to its 1-indexed line and
// grapheme-cluster column. An offset past the end of src clamps to the
// last valid position.
func (m *Map) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(m.src) {
		offset = len(m.src)
	}
	// lineStarts is sorted ascending; the line containing offset is the
	// last start <= offset.
	line := sort.Search(len(m.lineStarts), func(i int) bool {
		return m.lineStarts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	lineStart := m.lineStarts[line]
	lineEnd := len(m.src)
	if line+1 < len(m.lineStarts) {
		lineEnd = m.lineStarts[line+1]
	}
	col := graphemeColumn(m.src[lineStart:min(offset, lineEnd)])
	return Position{Line: line + 1, Column: col + 1}
}

// graphemeColumn counts the grapheme clusters in s, the 0-indexed
// column offset past the last one.
func graphemeColumn(s string) int {
	count := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		count++
	}
	return count
}
