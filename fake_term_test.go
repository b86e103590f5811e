package liso

import "github.com/SolraBizna/liso/internal/term"

// fakeTerminal is a recording Terminal double used by renderer and worker
// tests: it logs every call (as a short op tag) and keeps a minimal model
// of cursor position and current style so assertions can check both what
// was emitted and where it left the cursor.
type fakeTerminal struct {
	ops      []string
	width    int
	style    term.Style
	row      int
	col      int
	suspends int
}

func newFakeTerminal(width int) *fakeTerminal {
	if width <= 0 {
		width = 80
	}
	return &fakeTerminal{width: width}
}

func (f *fakeTerminal) log(op string) { f.ops = append(f.ops, op) }

func (f *fakeTerminal) SetAttrs(a term.Attrs) error {
	f.log("set")
	f.style = a.Style
	return nil
}
func (f *fakeTerminal) ResetAttrs() error {
	f.log("reset")
	f.style = term.Plain
	return nil
}
func (f *fakeTerminal) CurStyle() term.Style { return f.style }

func (f *fakeTerminal) Print(text string) error {
	f.log("print:" + text)
	for range text {
		f.col++
	}
	return nil
}
func (f *fakeTerminal) PrintSpaces(n int) error {
	f.log("spaces")
	f.col += n
	return nil
}

func (f *fakeTerminal) MoveCursorUp(n int) error {
	if n > 0 {
		f.log("up")
		f.row -= n
	}
	return nil
}
func (f *fakeTerminal) MoveCursorDown(n int) error {
	if n > 0 {
		f.log("down")
		f.row += n
	}
	return nil
}
func (f *fakeTerminal) MoveCursorLeft(n int) error {
	if n > 0 {
		f.log("left")
		f.col -= n
	}
	return nil
}
func (f *fakeTerminal) MoveCursorRight(n int) error {
	if n > 0 {
		f.log("right")
		f.col += n
	}
	return nil
}
func (f *fakeTerminal) Newline() error {
	f.log("newline")
	f.row++
	return nil
}
func (f *fakeTerminal) CarriageReturn() error {
	f.log("cr")
	f.col = 0
	return nil
}
func (f *fakeTerminal) Bell() error { f.log("bell"); return nil }

func (f *fakeTerminal) ClearAllAndReset() error     { f.log("clearall"); return nil }
func (f *fakeTerminal) ClearForwardAndReset() error { f.log("clearfwd"); return nil }
func (f *fakeTerminal) ClearToEndOfLine() error     { f.log("cleareol"); return nil }

func (f *fakeTerminal) HideCursor() error { f.log("hide"); return nil }
func (f *fakeTerminal) ShowCursor() error { f.log("show"); return nil }

func (f *fakeTerminal) Width() int { return f.width }
func (f *fakeTerminal) Flush() error {
	f.log("flush")
	return nil
}

func (f *fakeTerminal) Suspend() error   { f.suspends++; f.log("suspend"); return nil }
func (f *fakeTerminal) Unsuspend() error { f.log("unsuspend"); return nil }
func (f *fakeTerminal) Cleanup() error   { f.log("cleanup"); return nil }

func (f *fakeTerminal) printCount(op string) int {
	n := 0
	for _, o := range f.ops {
		if o == op {
			n++
		}
	}
	return n
}
