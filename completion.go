package liso

// CompletionKind identifies which shape a Completion carries.
type CompletionKind int

const (
	// InsertAtCursor splices Text in at the cursor and moves the cursor
	// past it.
	InsertAtCursor CompletionKind = iota
	// ReplaceWholeLine replaces the whole input line and sets the cursor
	// to NewCursor, bounds-checked against the new line's length.
	ReplaceWholeLine
)

// Completion is the result of a Completor's Complete call.
type Completion struct {
	Kind CompletionKind

	Text      string // InsertAtCursor
	NewLine   string // ReplaceWholeLine
	NewCursor int    // ReplaceWholeLine
}

// Completor supplies tab-completion. Complete is called with the output
// handle (so a completor may print a notice or a list of candidates),
// the current input and cursor, and how many times Tab has been pressed
// consecutively (1 on the first press). A nil return is silent; by
// convention a completor that wants to signal "no completion" should
// have already produced a notice or rung the bell itself.
type Completor interface {
	Complete(out *Output, input string, cursor int, consecutivePresses uint32) *Completion
}
