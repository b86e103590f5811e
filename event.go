package liso

import "github.com/SolraBizna/liso/internal/term"

// KeyCode identifies a non-printable key recognized by a terminal driver's
// input decoder.
type KeyCode = term.KeyCode

const (
	KeyNone      = term.KeyNone
	KeyUp        = term.KeyUp
	KeyDown      = term.KeyDown
	KeyLeft      = term.KeyLeft
	KeyRight     = term.KeyRight
	KeyHome      = term.KeyHome
	KeyEnd       = term.KeyEnd
	KeyBackspace = term.KeyBackspace
	KeyDelete    = term.KeyDelete
	KeyEnter     = term.KeyEnter
	KeyTab       = term.KeyTab
	KeyEscape    = term.KeyEscape
	KeyResize    = term.KeyResize
)

// Event is a single decoded input event from a TTY-mode terminal driver.
type Event = term.Event
