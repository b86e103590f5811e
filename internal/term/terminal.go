package term

import "time"

// EscapeDelay is how long the raw-byte key decoder waits after receiving an
// ESC before deciding it was a bare Escape keypress rather than the start of
// an escape sequence. Generous enough that even a 300 baud modem would have
// delivered the rest of a real sequence by the deadline.
const EscapeDelay = time.Second / 24

// CursorStyle selects the visual appearance of the terminal's cursor.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// Terminal is the abstraction the worker drives. Exactly one goroutine
// (the worker) ever calls these methods; implementations need no internal
// locking.
type Terminal interface {
	// SetAttrs defers emitting a control code until the next Print*, but
	// remembers the requested attributes so CurStyle reflects them
	// immediately.
	SetAttrs(a Attrs) error
	ResetAttrs() error
	// CurStyle returns the style most recently passed to SetAttrs (or the
	// style left in effect after ResetAttrs).
	CurStyle() Style

	Print(text string) error
	PrintSpaces(n int) error

	MoveCursorUp(n int) error
	MoveCursorDown(n int) error
	MoveCursorLeft(n int) error
	MoveCursorRight(n int) error
	Newline() error
	CarriageReturn() error
	Bell() error

	ClearAllAndReset() error
	ClearForwardAndReset() error
	ClearToEndOfLine() error

	HideCursor() error
	ShowCursor() error

	// Width returns the terminal's column count, falling back to 80 if it
	// cannot be determined.
	Width() int
	Flush() error

	// Suspend leaves the terminal in a state usable by another program
	// (attributes reset, cursor shown, raw mode left); Unsuspend puts it
	// back the way the worker wants it.
	Suspend() error
	Unsuspend() error
	Cleanup() error
}

// KeyCode identifies a non-printable key the full driver's decoder can
// recognize out of a raw byte stream or a platform key-event stream.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeyEscape
	KeyResize
)

// Event is a single decoded input event: either a plain character (Ch, with
// Code == KeyNone) or a recognized special key.
type Event struct {
	Code KeyCode
	Ch   rune
	Ctrl bool
}
