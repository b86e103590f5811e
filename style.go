package liso

import "github.com/SolraBizna/liso/internal/term"

// Style is a bitset of text attributes. The zero value, Plain, carries no
// attributes at all.
type Style = term.Style

const (
	Plain     = term.Plain
	Bold      = term.Bold
	Dim       = term.Dim
	Underline = term.Underline
	Inverse   = term.Inverse
	Italic    = term.Italic
)
