//go:build !windows

package term

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// fullDriver implements Terminal with ANSI/VT100 escape codes over a
// buffered writer, using golang.org/x/term for raw-mode and size queries.
// This is the default driver for any modern terminal (xterm, the Linux
// console, most terminal emulators).
type fullDriver struct {
	out      *bufio.Writer
	fd       int
	rawState *term.State
	style    Style
	fg, bg   *Color
	pending  bool
}

// NewFullDriver constructs the ANSI-capable driver writing to stdout and
// reading terminal size from fd. Raw mode is not entered here; call
// Unsuspend once the worker is ready to own the terminal.
func NewFullDriver() Terminal {
	return &fullDriver{
		out: bufio.NewWriter(os.Stdout),
		fd:  int(os.Stdout.Fd()),
	}
}

func ansiFG(c Color) int { return 30 + int(c) }
func ansiBG(c Color) int { return 40 + int(c) }

func (d *fullDriver) SetAttrs(a Attrs) error {
	d.style = a.Style
	d.fg = a.FG
	d.bg = a.BG
	d.pending = true
	return nil
}

func (d *fullDriver) CurStyle() Style { return d.style }

func (d *fullDriver) ResetAttrs() error {
	d.style = Plain
	d.fg = nil
	d.bg = nil
	_, err := d.out.WriteString("\x1b[0m")
	return err
}

// flushAttrs writes the pending SGR sequence, if any, immediately before
// the next bit of visible output. Bold+Dim share a single "disable" code
// on many terminals, so switching to a strictly smaller attribute set
// always resets and reapplies rather than trying to turn off one bit.
func (d *fullDriver) flushAttrs() error {
	if !d.pending {
		return nil
	}
	d.pending = false
	seq := "\x1b[0"
	if d.style.Contains(Bold) {
		seq += ";1"
	}
	if d.style.Contains(Dim) {
		seq += ";2"
	}
	if d.style.Contains(Italic) {
		seq += ";3"
	}
	if d.style.Contains(Underline) {
		seq += ";4"
	}
	if d.style.Contains(Inverse) {
		seq += ";7"
	}
	if d.fg != nil {
		seq += fmt.Sprintf(";%d", ansiFG(*d.fg))
	}
	if d.bg != nil {
		seq += fmt.Sprintf(";%d", ansiBG(*d.bg))
	}
	seq += "m"
	_, err := d.out.WriteString(seq)
	return err
}

func (d *fullDriver) Print(text string) error {
	if err := d.flushAttrs(); err != nil {
		return err
	}
	_, err := d.out.WriteString(text)
	return err
}

func (d *fullDriver) PrintSpaces(n int) error {
	if n <= 0 {
		return nil
	}
	if err := d.flushAttrs(); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := d.out.WriteByte(' '); err != nil {
			return err
		}
	}
	return nil
}

func (d *fullDriver) move(n int, code byte) error {
	if n <= 0 {
		return nil
	}
	_, err := fmt.Fprintf(d.out, "\x1b[%d%c", n, code)
	return err
}

func (d *fullDriver) MoveCursorUp(n int) error    { return d.move(n, 'A') }
func (d *fullDriver) MoveCursorDown(n int) error  { return d.move(n, 'B') }
func (d *fullDriver) MoveCursorRight(n int) error { return d.move(n, 'C') }
func (d *fullDriver) MoveCursorLeft(n int) error  { return d.move(n, 'D') }

func (d *fullDriver) Newline() error {
	_, err := d.out.WriteString("\n")
	return err
}

func (d *fullDriver) CarriageReturn() error {
	_, err := d.out.WriteString("\r")
	return err
}

func (d *fullDriver) Bell() error {
	_, err := d.out.WriteString("\a")
	return err
}

func (d *fullDriver) ClearAllAndReset() error {
	_, err := d.out.WriteString("\x1b[0m\x1b[2J\x1b[H")
	return err
}

func (d *fullDriver) ClearForwardAndReset() error {
	_, err := d.out.WriteString("\x1b[0m\x1b[J")
	return err
}

func (d *fullDriver) ClearToEndOfLine() error {
	_, err := d.out.WriteString("\x1b[K")
	return err
}

func (d *fullDriver) HideCursor() error {
	_, err := d.out.WriteString("\x1b[?25l")
	return err
}

func (d *fullDriver) ShowCursor() error {
	_, err := d.out.WriteString("\x1b[?25h")
	return err
}

func (d *fullDriver) Width() int {
	w, _, err := term.GetSize(d.fd)
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func (d *fullDriver) Flush() error { return d.out.Flush() }

func (d *fullDriver) Suspend() error {
	if err := d.ResetAttrs(); err != nil {
		return err
	}
	if err := d.ShowCursor(); err != nil {
		return err
	}
	if err := d.Flush(); err != nil {
		return err
	}
	if d.rawState != nil {
		err := term.Restore(d.fd, d.rawState)
		d.rawState = nil
		return err
	}
	return nil
}

func (d *fullDriver) Unsuspend() error {
	state, err := term.MakeRaw(d.fd)
	if err != nil {
		return err
	}
	d.rawState = state
	return nil
}

func (d *fullDriver) Cleanup() error {
	return d.Suspend()
}
