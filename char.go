package liso

import "unicode/utf8"

// LineChar is a read-only view of a single code point within a Line: its
// byte offset, the code point itself, and the style/color triple in
// effect at that position.
type LineChar struct {
	ByteOffset int
	Ch         rune
	Style      Style
	FG         *Color
	BG         *Color
}

// LineCharIterator produces a Line's characters in order, alongside the
// attributes in effect at each one. It never mutates the Line it walks.
type LineCharIterator struct {
	line    *Line
	byteOff int
	elemIdx int
}

// Chars returns an iterator over l's characters.
func (l *Line) Chars() *LineCharIterator {
	return &LineCharIterator{line: l}
}

// Next advances the iterator and returns the next character, or ok=false
// at end of text.
func (it *LineCharIterator) Next() (LineChar, bool) {
	if it.byteOff >= len(it.line.text) {
		return LineChar{}, false
	}
	r, size := utf8.DecodeRuneInString(it.line.text[it.byteOff:])
	for it.elemIdx < len(it.line.elements)-1 &&
		it.line.elements[it.elemIdx].End <= it.byteOff {
		it.elemIdx++
	}
	e := it.line.elements[it.elemIdx]
	lc := LineChar{
		ByteOffset: it.byteOff,
		Ch:         r,
		Style:      e.Style,
		FG:         e.FG,
		BG:         e.BG,
	}
	it.byteOff += size
	return lc, true
}
