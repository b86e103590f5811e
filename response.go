package liso

// ResponseKind identifies which variant a Response carries.
type ResponseKind int

const (
	// Dead is sent once, when the terminal or input thread has died; no
	// further responses follow it.
	Dead ResponseKind = iota
	// Input carries a completed line of user input.
	Input
	// Quit is sent on control-C.
	Quit
	// Discarded is sent on control-G, carrying the input that was cleared.
	Discarded
	// Finish is sent on control-D against an empty input line.
	Finish
	// Info is sent on control-T.
	Info
	// Break is sent on control-backslash.
	Break
	// Escape is sent when the user presses the Escape key on its own.
	Escape
	// Swap is sent on control-X.
	Swap
	// Custom carries the opaque value of a Custom request (Output.SendCustom),
	// echoed back once the worker reaches it in the queue.
	Custom
	// Unknown is sent for a control character with no bound meaning.
	Unknown
)

// Response is a single message read from an InputOutput's response
// stream. Exactly one field is meaningful, per Kind.
type Response struct {
	Kind ResponseKind

	Text        string // Input, Discarded
	UnknownByte byte   // Unknown
	Custom      interface{}
}

// AsUnknown reports the byte code generically associated with a
// non-Input response variant, for producing "unrecognized key" messages
// without a type switch over every kind. Dead reports code 0 with ok=true;
// Input and Custom have no associated byte and return ok=false.
func (r Response) AsUnknown() (code byte, ok bool) {
	switch r.Kind {
	case Dead:
		return 0, true
	case Quit:
		return 3, true
	case Finish:
		return 4, true
	case Info:
		return 20, true
	case Escape:
		return 27, true
	case Break:
		return 28, true
	case Discarded:
		return 7, true
	case Swap:
		return 24, true
	case Unknown:
		return r.UnknownByte, true
	default:
		return 0, false
	}
}
