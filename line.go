package liso

import (
	"fmt"
	"unicode"
)

// Line is an owned piece of styled text: a UTF-8 string plus an ordered,
// coalesced sequence of LineElements describing which attributes apply to
// which byte ranges.
//
// Line maintains a hard invariant: its text never contains a C0 or C1
// control character (other than '\n'), nor U+2028 or U+2029. Any such
// character passed to AddText is rewritten on entry into a caret form
// ("^A") or a "U+XXXX" form, wrapped in a toggled Inverse, so the stored
// text is always safe to write to a terminal.
type Line struct {
	text     string
	elements []LineElement
}

// NewLine returns an empty line.
func NewLine() *Line {
	return &Line{}
}

// LineFromString returns a line containing s as unstyled plain text, with
// control-character substitution applied.
func LineFromString(s string) *Line {
	l := NewLine()
	l.AddText(s)
	return l
}

// Text returns the line's current text, already safe to print.
func (l *Line) Text() string { return l.text }

// IsEmpty reports whether the line contains no text.
func (l *Line) IsEmpty() bool { return len(l.text) == 0 }

// Len returns the number of bytes of text in the line.
func (l *Line) Len() int { return len(l.text) }

// Elements returns the line's elements. The returned slice must not be
// mutated by the caller.
func (l *Line) Elements() []LineElement { return l.elements }

// Clone returns a deep copy of l.
func (l *Line) Clone() *Line {
	elems := make([]LineElement, len(l.elements))
	for i, e := range l.elements {
		elems[i] = LineElement{Style: e.Style, FG: colorPtrClone(e.FG), BG: colorPtrClone(e.BG), Start: e.Start, End: e.End}
	}
	return &Line{text: l.text, elements: elems}
}

// appendText appends raw, already-safe text using the current tail
// attributes, extending the tail element (or the sole empty element) to
// cover it. An empty tail whose attributes equal its predecessor's is
// merged into the predecessor first, so adjacent elements never share one
// attribute triple.
func (l *Line) appendText(s string) {
	if len(s) == 0 {
		return
	}
	if len(l.text) == 0 {
		if len(l.elements) == 0 {
			l.elements = append(l.elements, LineElement{Start: 0, End: len(s)})
		} else {
			tail := &l.elements[len(l.elements)-1]
			tail.End = len(s)
		}
		l.text = s
		return
	}
	if n := len(l.elements); n >= 2 {
		tail := l.elements[n-1]
		if tail.Start == tail.End && tail.attrs().equal(l.elements[n-2].attrs()) {
			l.elements = l.elements[:n-1]
		}
	}
	start := len(l.text)
	l.text += s
	tail := &l.elements[len(l.elements)-1]
	tail.End = start + len(s)
}

// AddText appends plain text to the line under the current styling,
// rewriting any control character (C0/C1 other than '\n', U+2028,
// U+2029) into a visible, Inverse-toggled caret or "U+XXXX" form.
func (l *Line) AddText(s string) *Line {
	if len(s) == 0 {
		return l
	}
	plainStart := 0
	for i, r := range s {
		if !isSubstitutedControl(r) {
			continue
		}
		if i != plainStart {
			l.appendText(s[plainStart:i])
		}
		l.ToggleStyle(Inverse)
		l.appendText(controlEscapeForm(r))
		l.ToggleStyle(Inverse)
		plainStart = i + len(string(r))
	}
	if plainStart != len(s) {
		l.appendText(s[plainStart:])
	}
	return l
}

func isSubstitutedControl(r rune) bool {
	if r == '\n' {
		return false
	}
	return unicode.IsControl(r) || r == ' ' || r == ' '
}

func controlEscapeForm(r rune) string {
	if r < 0x20 {
		return fmt.Sprintf("^%c", byte('@')+byte(r))
	}
	if r == 0x7f {
		return "^?"
	}
	return fmt.Sprintf("U+%04X", r)
}

// GetStyle returns the style in effect at the end of the line as it
// stands now.
func (l *Line) GetStyle() Style {
	if len(l.elements) == 0 {
		return Plain
	}
	return l.elements[len(l.elements)-1].Style
}

// SetStyle changes the active style to exactly nu, coalescing into the
// tail element if it has no text yet.
func (l *Line) SetStyle(nu Style) *Line {
	var fg, bg *Color
	if len(l.elements) > 0 {
		tail := &l.elements[len(l.elements)-1]
		if tail.Style == nu {
			return l
		}
		if tail.Start == tail.End {
			tail.Style = nu
			return l
		}
		fg, bg = tail.FG, tail.BG
	}
	l.elements = append(l.elements, LineElement{
		Style: nu, FG: fg, BG: bg,
		Start: len(l.text), End: len(l.text),
	})
	return l
}

// ToggleStyle flips each bit set in nu.
func (l *Line) ToggleStyle(nu Style) *Line {
	return l.SetStyle(l.GetStyle() ^ nu)
}

// ActivateStyle sets each bit set in nu, leaving others unchanged.
func (l *Line) ActivateStyle(nu Style) *Line {
	return l.SetStyle(l.GetStyle() | nu)
}

// DeactivateStyle clears each bit set in nu, leaving others unchanged.
func (l *Line) DeactivateStyle(nu Style) *Line {
	return l.SetStyle(l.GetStyle() &^ nu)
}

// ClearStyle resets the active style to Plain.
func (l *Line) ClearStyle() *Line {
	return l.SetStyle(Plain)
}

// GetColors returns the foreground and background color in effect at the
// end of the line.
func (l *Line) GetColors() (fg, bg *Color) {
	if len(l.elements) == 0 {
		return nil, nil
	}
	tail := l.elements[len(l.elements)-1]
	return tail.FG, tail.BG
}

// SetFGColor sets the foreground color, leaving the background alone.
func (l *Line) SetFGColor(nu *Color) *Line {
	fg, bg := l.GetColors()
	if !colorPtrEqual(nu, fg) {
		l.SetColors(nu, bg)
	}
	return l
}

// SetBGColor sets the background color, leaving the foreground alone.
func (l *Line) SetBGColor(nu *Color) *Line {
	fg, bg := l.GetColors()
	if !colorPtrEqual(nu, bg) {
		l.SetColors(fg, nu)
	}
	return l
}

// SetColors sets both colors at once, coalescing into the tail element if
// it has no text yet.
func (l *Line) SetColors(fg, bg *Color) *Line {
	var style Style
	if len(l.elements) > 0 {
		tail := &l.elements[len(l.elements)-1]
		if colorPtrEqual(tail.FG, fg) && colorPtrEqual(tail.BG, bg) {
			return l
		}
		if tail.Start == tail.End {
			tail.FG, tail.BG = fg, bg
			return l
		}
		style = tail.Style
	}
	l.elements = append(l.elements, LineElement{
		Style: style, FG: fg, BG: bg,
		Start: len(l.text), End: len(l.text),
	})
	return l
}

// ClearAndBreak appends a newline and resets style and colors to their
// defaults, ready for the next logical line.
func (l *Line) ClearAndBreak() *Line {
	l.AddText("\n")
	l.SetStyle(Plain)
	l.SetColors(nil, nil)
	return l
}

// AppendLine copies other's text and elements onto the end of l, under
// its own attributes (which are restored for each copied element).
func (l *Line) AppendLine(other *Line) *Line {
	for _, e := range other.elements {
		l.SetStyle(e.Style)
		l.SetColors(e.FG, e.BG)
		l.AddText(other.text[e.Start:e.End])
	}
	return l
}
