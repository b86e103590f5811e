// Package wrap measures display width and wraps styled text to a column
// count, the way a terminal would actually render it.
package wrap

import (
	"unicode"

	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"
)

// StringWidth returns the number of terminal columns s would occupy.
// Most text takes the uniwidth fast path (O(1) table lookups per rune);
// text containing ZWJ sequences, emoji modifiers, or combining marks falls
// back to grapheme clustering so a multi-rune cluster is measured once by
// its base character rather than once per rune.
func StringWidth(s string) int {
	if s == "" {
		return 0
	}
	if !containsComplexUnicode(s) {
		return uniwidth.StringWidth(s)
	}
	width := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		width += ClusterWidth(gr.Str())
	}
	return width
}

// RuneWidth returns the column width of a single rune in isolation.
func RuneWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// ClusterWidth returns the column width of one grapheme cluster: the width
// of its base rune, ignoring any combining marks or modifiers that follow.
func ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	runes := []rune(cluster)
	if len(runes) == 1 {
		return uniwidth.RuneWidth(runes[0])
	}
	first := runes[0]
	if isZeroWidth(first) {
		return 0
	}
	if len(runes) >= 2 && (runes[1] == 0xFE0E || runes[1] == 0xFE0F) {
		return uniwidth.StringWidth(cluster)
	}
	return uniwidth.RuneWidth(first)
}

func containsComplexUnicode(s string) bool {
	for _, r := range s {
		if r == 0x200D { // zero-width joiner
			return true
		}
		if r >= 0xFE00 && r <= 0xFE0F { // variation selectors
			return true
		}
		if r >= 0x1F3FB && r <= 0x1F3FF { // emoji skin-tone modifiers
			return true
		}
		if unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc) {
			return true
		}
	}
	return false
}

func isZeroWidth(r rune) bool {
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc, unicode.Cf) {
		return true
	}
	return r == '\u200B' || r == '\uFEFF'
}
