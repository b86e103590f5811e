package liso

import "github.com/SolraBizna/liso/internal/term"

// Color is one of the eight named colors Liso can set as a foreground or
// background. Expanding this set is a compatibility decision: every
// terminal driver, including the restricted one, must be able to
// represent each value.
type Color = term.Color

const (
	Black   = term.Black
	Red     = term.Red
	Green   = term.Green
	Yellow  = term.Yellow
	Blue    = term.Blue
	Cyan    = term.Cyan
	Magenta = term.Magenta
	White   = term.White
)
