package term

import (
	"bufio"
	"os"
)

// Palette selects how many simultaneous colors a restricted terminal can
// show; chosen from the terminal's reported dimensions the way an Atari ST
// in ST-low/-medium/-high resolution implies a color depth.
type Palette int

const (
	Palette16 Palette = 16
	Palette4  Palette = 4
	Palette2  Palette = 2
)

// restrictedDriver implements Terminal for an 8-bit, non-UTF-8, limited
// palette terminal such as a real VT52 or an Atari ST emulating one. It
// emits two-byte color escapes instead of SGR, substitutes a placeholder
// glyph for any code point it can't represent, and palettizes colors to
// whatever the terminal can actually show.
type restrictedDriver struct {
	out          *bufio.Writer
	width        int
	palette      Palette
	whiteOnBlack bool
	style        Style
	fg, bg       *Color
	pending      bool
}

// NewRestrictedDriver constructs the legacy driver. width is the terminal's
// (fixed, queried once at startup) column count; palette and whiteOnBlack
// come from environment detection (chooseDriver in the liso package's env.go).
func NewRestrictedDriver(width int, palette Palette, whiteOnBlack bool) Terminal {
	if width <= 0 {
		width = 80
	}
	return &restrictedDriver{
		out:          bufio.NewWriter(os.Stdout),
		width:        width,
		palette:      palette,
		whiteOnBlack: whiteOnBlack,
	}
}

// atari16Bright/atari16Dim/atari4 map the closed 8-color Liso palette onto
// the index spaces of an Atari ST's 16- and 4-color text modes. Bright is
// used for Bold text, dim otherwise; this is the driver's only nod to
// Style since VT52-family terminals have no SGR bold/underline/inverse
// distinct from color.
func atari16Bright(c Color) byte {
	switch c {
	case Black:
		return 8
	case Red:
		return 1
	case Green:
		return 2
	case Yellow:
		return 13
	case Blue:
		return 4
	case Cyan:
		return 9
	case Magenta:
		return 12
	default:
		return 0
	}
}

func atari16Dim(c Color) byte {
	switch c {
	case Black:
		return 15
	case Red:
		return 3
	case Green:
		return 5
	case Yellow:
		return 11
	case Blue:
		return 6
	case Cyan:
		return 10
	case Magenta:
		return 14
	default:
		return 7
	}
}

func atari4(c Color) byte {
	switch c {
	case Black:
		return 15
	case Red, Magenta:
		return 1
	case Green, Yellow, Cyan:
		return 2
	case Blue:
		return 3
	default:
		return 0
	}
}

func (d *restrictedDriver) paletteIndex(c Color, bright bool) byte {
	switch d.palette {
	case Palette4:
		return atari4(c)
	case Palette2:
		if d.whiteOnBlack {
			return 1
		}
		return 0
	default:
		if bright {
			return atari16Bright(c)
		}
		return atari16Dim(c)
	}
}

func (d *restrictedDriver) SetAttrs(a Attrs) error {
	d.style = a.Style
	d.fg = a.FG
	d.bg = a.BG
	d.pending = true
	return nil
}

func (d *restrictedDriver) CurStyle() Style { return d.style }

func (d *restrictedDriver) ResetAttrs() error {
	d.style = Plain
	d.fg = nil
	d.bg = nil
	// Esc-b / Esc-c reset the VT52 foreground/background to default.
	_, err := d.out.WriteString("\x1bb\x07\x1bc\x00")
	return err
}

func (d *restrictedDriver) flushAttrs() error {
	if !d.pending {
		return nil
	}
	d.pending = false
	bright := d.style.Contains(Bold)
	fg := d.fg
	bg := d.bg
	if d.style.Contains(Inverse) {
		fg, bg = bg, fg
	}
	if fg != nil {
		if err := d.out.WriteByte(0x1b); err != nil {
			return err
		}
		if err := d.out.WriteByte('b'); err != nil {
			return err
		}
		if err := d.out.WriteByte(d.paletteIndex(*fg, bright)); err != nil {
			return err
		}
	}
	if bg != nil {
		if err := d.out.WriteByte(0x1b); err != nil {
			return err
		}
		if err := d.out.WriteByte('c'); err != nil {
			return err
		}
		if err := d.out.WriteByte(d.paletteIndex(*bg, false)); err != nil {
			return err
		}
	}
	return nil
}

// substitute replaces any rune outside printable 7-bit ASCII (this
// terminal isn't UTF-8 capable) with a visible placeholder.
func substitute(r rune) byte {
	if r >= 0x20 && r < 0x7f {
		return byte(r)
	}
	return '?'
}

func (d *restrictedDriver) Print(text string) error {
	if err := d.flushAttrs(); err != nil {
		return err
	}
	for _, r := range text {
		if err := d.out.WriteByte(substitute(r)); err != nil {
			return err
		}
	}
	return nil
}

func (d *restrictedDriver) PrintSpaces(n int) error {
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

// VT52 has no relative cursor motion beyond single steps; emit the step
// code n times.
func (d *restrictedDriver) repeat(n int, code byte) error {
	for i := 0; i < n; i++ {
		if err := d.out.WriteByte(0x1b); err != nil {
			return err
		}
		if err := d.out.WriteByte(code); err != nil {
			return err
		}
	}
	return nil
}

func (d *restrictedDriver) MoveCursorUp(n int) error    { return d.repeat(n, 'A') }
func (d *restrictedDriver) MoveCursorDown(n int) error  { return d.repeat(n, 'B') }
func (d *restrictedDriver) MoveCursorRight(n int) error { return d.repeat(n, 'C') }
func (d *restrictedDriver) MoveCursorLeft(n int) error  { return d.repeat(n, 'D') }

func (d *restrictedDriver) Newline() error {
	return d.out.WriteByte('\n')
}

func (d *restrictedDriver) CarriageReturn() error {
	return d.out.WriteByte('\r')
}

func (d *restrictedDriver) Bell() error {
	return d.out.WriteByte(0x07)
}

func (d *restrictedDriver) ClearAllAndReset() error {
	if err := d.ResetAttrs(); err != nil {
		return err
	}
	_, err := d.out.WriteString("\x1bE\x1bH")
	return err
}

func (d *restrictedDriver) ClearForwardAndReset() error {
	if err := d.ResetAttrs(); err != nil {
		return err
	}
	_, err := d.out.WriteString("\x1bJ")
	return err
}

func (d *restrictedDriver) ClearToEndOfLine() error {
	_, err := d.out.WriteString("\x1bK")
	return err
}

func (d *restrictedDriver) HideCursor() error {
	_, err := d.out.WriteString("\x1bf")
	return err
}

func (d *restrictedDriver) ShowCursor() error {
	_, err := d.out.WriteString("\x1be")
	return err
}

func (d *restrictedDriver) Width() int { return d.width }

func (d *restrictedDriver) Flush() error { return d.out.Flush() }

func (d *restrictedDriver) Suspend() error {
	if err := d.ResetAttrs(); err != nil {
		return err
	}
	if err := d.ShowCursor(); err != nil {
		return err
	}
	return d.Flush()
}

func (d *restrictedDriver) Unsuspend() error { return nil }

func (d *restrictedDriver) Cleanup() error { return d.Suspend() }
