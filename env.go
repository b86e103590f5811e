package liso

import (
	"os"
	"strings"

	"github.com/SolraBizna/liso/internal/term"
)

// restrictedTerms is the closed set of legacy TERM values that get the
// restricted (8-bit, limited-palette) driver instead of the full ANSI one.
var restrictedTerms = map[string]bool{
	"atari":       true,
	"atari-16":    true,
	"atari-color": true,
	"vt52":        true,
}

// pipeMode reports whether the worker should run in pipe mode: stdin or
// stdout is not a terminal, or TERM names a non-interactive type.
func pipeMode() bool {
	if !term.StdinIsTTY() || !term.StdoutIsTTY() {
		return true
	}
	switch os.Getenv("TERM") {
	case "dumb", "pipe":
		return true
	}
	return false
}

// chooseDriver picks the full or restricted Terminal implementation for
// TTY mode, reading TERM and ATARI_WHITE_ON_BLACK the way §6 specifies.
func chooseDriver() term.Terminal {
	t := strings.ToLower(os.Getenv("TERM"))
	if !restrictedTerms[t] {
		return term.NewFullDriver()
	}
	whiteOnBlack := isTruthyEnv(os.Getenv("ATARI_WHITE_ON_BLACK"))
	width := term.NewFullDriver().Width()
	palette := term.Palette16
	switch {
	case width < 40:
		palette = term.Palette2
	case width < 60:
		palette = term.Palette4
	}
	return term.NewRestrictedDriver(width, palette, whiteOnBlack)
}

// useCrosstermInput reports whether the raw-byte key decoder should be
// used in place of a platform key-event stream, per LISO_CROSSTERM_INPUT.
func useCrosstermInput() bool {
	v := os.Getenv("LISO_CROSSTERM_INPUT")
	if v == "" {
		return true
	}
	return isTruthyEnv(v)
}

func isTruthyEnv(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
