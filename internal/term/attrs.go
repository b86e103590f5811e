// Package term provides the terminal abstraction the Liso worker drives:
// a small set of cursor/attribute/screen operations, and two backends
// (a full ANSI-capable driver and a restricted legacy driver) chosen by
// environment at startup.
package term

import "fmt"

// Color is one of the eight named ANSI colors Liso supports outputting.
// For compatibility, only the 3-bit ANSI palette is exposed; expanding this
// set is a compatibility decision, not a drive-by addition.
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Cyan
	Magenta
	White
)

// String renders the color's name, for debugging.
func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Yellow:
		return "Yellow"
	case Blue:
		return "Blue"
	case Cyan:
		return "Cyan"
	case Magenta:
		return "Magenta"
	case White:
		return "White"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

// Style is a bitset of text attributes. The zero value is Plain.
type Style uint32

const (
	// Bold prints in a bolder font and/or a brighter color.
	Bold Style = 1 << iota

	// Dim prints in a thinner font and/or a dimmer color.
	Dim

	// Underline prints with a line under the baseline.
	Underline

	// Inverse swaps the foreground and background colors. Liso toggles
	// this around every control-character substitution it makes.
	Inverse

	// Italic prints in an italic font, where supported.
	Italic

	// Plain is the zero value: no style bits set.
	Plain Style = 0
)

// Contains reports whether every bit set in other is also set in s.
func (s Style) Contains(other Style) bool { return s&other == other }

// String renders the set bits, for debugging.
func (s Style) String() string {
	if s == Plain {
		return "Plain"
	}
	names := []struct {
		bit  Style
		name string
	}{
		{Bold, "Bold"}, {Dim, "Dim"}, {Underline, "Underline"},
		{Inverse, "Inverse"}, {Italic, "Italic"},
	}
	out := ""
	for _, n := range names {
		if s.Contains(n.bit) {
			if out != "" {
				out += "|"
			}
			out += n.name
		}
	}
	return out
}

// Attrs bundles the three independent attribute coordinates a terminal
// write needs: the style bitset and the two optional colors.
type Attrs struct {
	Style Style
	FG    *Color
	BG    *Color
}

// Equal reports whether two Attrs describe the same terminal state.
func (a Attrs) Equal(b Attrs) bool {
	if a.Style != b.Style {
		return false
	}
	return colorEqual(a.FG, b.FG) && colorEqual(a.BG, b.BG)
}

func colorEqual(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
