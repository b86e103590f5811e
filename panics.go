package liso

import (
	"sync"

	"github.com/SolraBizna/liso/internal/term"
)

var (
	panicTermMu sync.Mutex
	panicTerm   term.Terminal
)

func registerPanicTerminal(t term.Terminal) {
	panicTermMu.Lock()
	panicTerm = t
	panicTermMu.Unlock()
}

func unregisterPanicTerminal() {
	panicTermMu.Lock()
	panicTerm = nil
	panicTermMu.Unlock()
}

// restoreTerminalForPanic puts the terminal back into a state any other
// program (including the shell) can use: cursor visible, attributes reset,
// screen cleared forward of the cursor, raw mode left.
func restoreTerminalForPanic() {
	panicTermMu.Lock()
	t := panicTerm
	panicTermMu.Unlock()
	if t == nil {
		return
	}
	_ = t.ShowCursor()
	_ = t.ResetAttrs()
	_ = t.ClearForwardAndReset()
	_ = t.Suspend()
	_ = t.Flush()
}

// Protect runs f and, if it panics, restores the terminal to a usable
// state before re-raising the panic so the program's own crash reporting
// and exit status continue as if Protect weren't there.
//
// Go has no process-wide panic hook equivalent to what other languages
// offer: defers only run while the panicking goroutine unwinds its own
// stack. Wrap whatever your program treats as "main work" in Protect (most
// simply, the body of func main) so a panic on that goroutine still leaves
// the terminal sane; a panic on an unrelated goroutine that doesn't go
// through Protect cannot be caught this way and will still leave the
// terminal raw when the process dies.
func Protect(f func()) {
	defer func() {
		if r := recover(); r != nil {
			restoreTerminalForPanic()
			panic(r)
		}
	}()
	f()
}
