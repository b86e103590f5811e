package liso

import (
	"os"
	"time"

	"github.com/SolraBizna/liso/internal/term"
)

// startRawInputReader reads stdin one byte at a time, decodes escape
// sequences through a KeyDecoder, and forwards each resolved Event to the
// worker as a TerminalEvent request. It exits when the byte stream ends
// (including when interrupted by a StdinInterrupter during shutdown) or
// when done is closed.
func startRawInputReader(reqs chan<- Request, done <-chan struct{}) {
	dec := term.NewKeyDecoder()
	bytes := make(chan byte)
	go func() {
		defer close(bytes)
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				select {
				case bytes <- buf[0]:
				case <-done:
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

	send := func(ev term.Event) bool {
		select {
		case reqs <- terminalEventRequest(ev):
			return true
		case <-done:
			return false
		}
	}

	for {
		var timeoutC <-chan time.Time
		if dec.Pending() {
			d := time.Until(dec.Deadline())
			if d < 0 {
				d = 0
			}
			timeoutC = time.After(d)
		}
		select {
		case <-done:
			return
		case b, ok := <-bytes:
			if !ok {
				return
			}
			if ev, result := dec.Feed(b); result == term.DecodeEvent {
				if !send(ev) {
					return
				}
			}
		case <-timeoutC:
			if ev, ok := dec.Timeout(); ok {
				if !send(ev) {
					return
				}
			}
		}
	}
}
