package liso

import "time"

// Output is a handle for producing styled output, status, prompts, and
// notices. Multiple Output handles may exist concurrently and may be held
// by different goroutines; each call enqueues a request and returns once
// it is queued. The queue holds 64 requests; a call made while it is full
// waits until the worker has taken one.
type Output struct {
	reqs chan<- Request
}

// send enqueues req, panicking with a fixed message if the request channel
// is closed. The worker never closes that channel, so using an Output after
// its InputOutput has died does not panic: the request is queued and never
// processed, and a send into a full queue waits forever.
func (o *Output) send(req Request) {
	defer func() {
		if recover() != nil {
			panic("liso output has stopped")
		}
	}()
	o.reqs <- req
}

// Output prints l above the composite.
func (o *Output) Output(l *Line) { o.send(outputRequest(l)) }

// OutputEcho prints l above the composite. The worker handles it exactly
// like Output.
func (o *Output) OutputEcho(l *Line) { o.send(outputEchoRequest(l)) }

// OutputWrapped word-wraps l to the terminal's current width before
// printing it above the composite.
func (o *Output) OutputWrapped(l *Line) { o.send(outputWrappedRequest(l)) }

// Status sets (or, with nil, clears) the persistent status line shown
// above the prompt.
func (o *Output) Status(l *Line) { o.send(statusRequest(l)) }

// Prompt sets the prompt line. If inputAllowed is false, keystrokes are
// ignored until a later Prompt call re-enables input. If clearInput is
// true, any in-progress input line is discarded.
func (o *Output) Prompt(l *Line, inputAllowed, clearInput bool) {
	o.send(promptRequest(l, inputAllowed, clearInput))
}

// Notice shows l in place of the prompt for duration, after which the
// prompt is restored; any keystroke also dismisses it immediately.
func (o *Output) Notice(l *Line, duration time.Duration) {
	o.send(noticeRequest(l, duration))
}

// Bell rings the terminal bell.
func (o *Output) Bell() { o.send(bellRequest()) }

// SuspendAndRun schedules f to run on the worker goroutine after every
// request enqueued so far and before any enqueued later, with the
// terminal left in a state usable by another program for the duration.
func (o *Output) SuspendAndRun(f func()) { o.send(suspendAndRunRequest(f)) }

// SetCompletor installs (or, with nil, removes) the tab-completion
// handler.
func (o *Output) SetCompletor(c Completor) { o.send(setCompletorRequest(c)) }

// BumpHistory tells the worker that the backing History was mutated out
// of band (e.g. via History.Swap) and it should re-locate its navigation
// cursor.
func (o *Output) BumpHistory() { o.send(bumpHistoryRequest()) }

// SendCustom enqueues an opaque value that the worker will echo back
// verbatim as a Custom response once it reaches the front of the queue,
// primarily useful for waking a blocked synchronous reader from another
// thread.
func (o *Output) SendCustom(v interface{}) { o.send(customRequest(v)) }
