package liso

import (
	"strings"
	"unicode/utf8"

	"github.com/SolraBizna/liso/internal/wrap"
)

// WrapToWidth inserts linebreaks so that no line (as measured by its
// East-Asian-Width-aware visual width) exceeds width columns, except
// where a single code point is itself wider than width. Existing
// newlines are left untouched; only the gaps between wrapped segments
// and the text on either side of a forced break are ever edited, and
// attribute elements straddling an edit are preserved across it, never
// dropped (save a non-final element that becomes empty, which is
// removed).
func (l *Line) WrapToWidth(width int) *Line {
	if width <= 0 {
		panic("liso: WrapToWidth requires width > 0")
	}
	var breaks [][2]int
	lineStart := 0
	for lineStart <= len(l.text) {
		idx := strings.IndexByte(l.text[lineStart:], '\n')
		lineEnd := len(l.text)
		if idx >= 0 {
			lineEnd = lineStart + idx
		}
		breaks = append(breaks, wrapNaturalLine(l.text, lineStart, lineEnd, width)...)
		if idx < 0 {
			break
		}
		lineStart = lineEnd + 1
	}
	for i := len(breaks) - 1; i >= 0; i-- {
		l.eraseAndInsertNewline(breaks[i][0], breaks[i][1])
	}
	return l
}

// wrapNaturalLine computes the byte ranges within text[start:end] (a
// single line with no embedded '\n') that must be replaced by a single
// '\n' to keep every resulting segment's visual width at most width.
// Ranges are returned in ascending order; a zero-length range denotes a
// forced break (inside an overlong word or leading space run, or between
// a line's leading spaces and the word after them) rather than a consumed
// space.
func wrapNaturalLine(text string, start, end, width int) [][2]int {
	var breaks [][2]int
	i := start
	curWidth := 0
	pendingSpace := [2]int{-1, -1}

	for i < end {
		r, _ := utf8.DecodeRuneInString(text[i:end])
		if r == ' ' {
			spaceStart := i
			for i < end {
				r2, sz2 := utf8.DecodeRuneInString(text[i:end])
				if r2 != ' ' {
					break
				}
				i += sz2
			}
			spaceEnd := i
			spaceWidth := spaceEnd - spaceStart
			switch {
			case curWidth == 0:
				wb, trailing := wrapWord(text, spaceStart, spaceEnd, width)
				breaks = append(breaks, wb...)
				curWidth = trailing
				pendingSpace = [2]int{-1, -1}
			case curWidth+spaceWidth <= width:
				curWidth += spaceWidth
				pendingSpace = [2]int{spaceStart, spaceEnd}
			default:
				breaks = append(breaks, [2]int{spaceStart, spaceEnd})
				curWidth = 0
				pendingSpace = [2]int{-1, -1}
			}
			continue
		}
		wordStart := i
		for i < end {
			r2, sz2 := utf8.DecodeRuneInString(text[i:end])
			if r2 == ' ' {
				break
			}
			i += sz2
		}
		wordEnd := i
		wordWidth := wrap.StringWidth(text[wordStart:wordEnd])
		switch {
		case curWidth == 0:
			wb, trailing := wrapWord(text, wordStart, wordEnd, width)
			breaks = append(breaks, wb...)
			curWidth = trailing
			pendingSpace = [2]int{-1, -1}
		case curWidth+wordWidth <= width:
			curWidth += wordWidth
			pendingSpace = [2]int{-1, -1}
		default:
			if pendingSpace[0] >= 0 {
				breaks = append(breaks, pendingSpace)
			} else {
				breaks = append(breaks, [2]int{wordStart, wordStart})
			}
			pendingSpace = [2]int{-1, -1}
			wb, trailing := wrapWord(text, wordStart, wordEnd, width)
			breaks = append(breaks, wb...)
			curWidth = trailing
		}
	}
	return breaks
}

// wrapWord finds forced mid-word break points for an overlong word,
// returning them plus the visual width remaining on the final segment.
func wrapWord(text string, start, end, width int) ([][2]int, int) {
	var breaks [][2]int
	segWidth := 0
	pos := start
	for pos < end {
		r, size := utf8.DecodeRuneInString(text[pos:end])
		cw := wrap.RuneWidth(r)
		if segWidth > 0 && segWidth+cw > width {
			breaks = append(breaks, [2]int{pos, pos})
			segWidth = 0
		}
		segWidth += cw
		pos += size
	}
	return breaks, segWidth
}

// eraseAndInsertNewline replaces text[start:end] with a single '\n',
// shifting and trimming elements to keep them contiguous. start == end
// is a pure insertion (a forced break); start < end consumes an
// existing run of text (typically a space run absorbed by a soft wrap).
func (l *Line) eraseAndInsertNewline(start, end int) {
	delta := 1 - (end - start)
	l.text = l.text[:start] + "\n" + l.text[end:]

	i := len(l.elements)
	for i > 0 {
		i--
		e := &l.elements[i]
		if e.End > end {
			e.End += delta
		} else if e.End > start {
			e.End = start
		}
		if e.Start > end {
			e.Start += delta
		} else if e.Start > start {
			e.Start = start
		}
		if e.End <= e.Start {
			if i == len(l.elements)-1 {
				e.End = e.Start
			} else {
				l.elements = append(l.elements[:i], l.elements[i+1:]...)
				continue
			}
		}
		if e.Start >= start {
			break
		}
	}
}
