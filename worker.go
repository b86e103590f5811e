package liso

import (
	"time"

	"github.com/SolraBizna/liso/internal/term"
)

// worker owns the terminal, the editor state, and the history for the
// lifetime of one InputOutput. Exactly one goroutine (runWorker's caller)
// ever touches these fields.
type worker struct {
	term        term.Terminal
	rd          *renderer
	editor      *EditorState
	interrupter *term.StdinInterrupter
	reqs        chan Request
	done        chan struct{}
}

// runWorker drives a single TTY session: it enters raw mode, starts the
// auxiliary input and heartbeat goroutines, then loops reading requests,
// draining whatever else is immediately available, and performing one
// rollout per batch, until a Die request arrives.
func runWorker(reqs chan Request, resps chan<- Response, hist *History) {
	t := chooseDriver()
	registerPanicTerminal(t)
	defer unregisterPanicTerminal()
	_ = t.Unsuspend()

	w := &worker{
		term:        t,
		rd:          newRenderer(t),
		editor:      NewEditorState(),
		interrupter: term.NewStdinInterrupter(),
		reqs:        reqs,
		done:        make(chan struct{}),
	}
	w.editor.history = hist

	go startHeartbeat(reqs, w.done)
	go startRawInputReader(reqs, w.done)

	defer close(resps)
	for {
		req, ok := <-reqs
		if !ok {
			w.shutdown()
			return
		}
		resp, die := w.apply(req)
		if resp != nil {
			resps <- *resp
		}
		if !die {
			die = w.drain(resps)
		}
		if die {
			w.shutdown()
			resps <- Response{Kind: Dead}
			return
		}
		w.afterBatch(resps)
	}
}

// drain applies every request already sitting in the queue without
// blocking, so a burst of API calls coalesces into a single rollout.
func (w *worker) drain(resps chan<- Response) (die bool) {
	for {
		select {
		case req, ok := <-w.reqs:
			if !ok {
				return true
			}
			resp, d := w.apply(req)
			if resp != nil {
				resps <- *resp
			}
			if d {
				return true
			}
		default:
			return false
		}
	}
}

// afterBatch performs the side effects that happen once per batch rather
// than once per request: a coalesced rollout, a deferred screen clear, and
// a deferred self-suspend.
func (w *worker) afterBatch(resps chan<- Response) {
	e := w.editor
	if e.clearScreen {
		e.clearScreen = false
		_ = w.term.ClearAllAndReset()
		e.remembered = nil
		w.rd.curAttrs = term.Attrs{}
		e.rolloutNeeded = true
	}
	if e.rolloutNeeded {
		_ = w.rd.rollout(e)
	}
	if e.suspendSelf {
		e.suspendSelf = false
		w.suspendAndRaise()
	}
}

func (w *worker) suspendAndRaise() {
	e := w.editor
	_ = w.rd.rollIn(e)
	_ = w.term.Suspend()
	raiseSelfStop()
	_ = w.term.Unsuspend()
	w.rd.curAttrs = term.Attrs{}
	e.remembered = nil
	e.rolloutNeeded = true
	_ = w.rd.rollout(e)
}

// shutdown drains whatever remains non-blockingly (so in-flight stderr
// output still reaches the screen), performs a final roll-in, and restores
// the terminal.
func (w *worker) shutdown() {
	close(w.done)
	if w.interrupter != nil {
		if restore, err := w.interrupter.Interrupt(); err == nil && restore != nil {
			defer restore()
		}
	}
drain:
	for {
		select {
		case req, ok := <-w.reqs:
			if !ok {
				break drain
			}
			w.apply(req)
		default:
			break drain
		}
	}
	_ = w.rd.rollIn(w.editor)
	_ = w.term.ShowCursor()
	_ = w.term.ResetAttrs()
	_ = w.term.Flush()
	_ = w.term.Cleanup()
}

// apply executes one request's effect against the worker's state, and
// returns a Response to emit immediately (if any) plus whether the request
// was Die.
func (w *worker) apply(req Request) (resp *Response, die bool) {
	e := w.editor
	switch req.Kind {
	case reqOutput, reqOutputEcho, reqOutputWrapped:
		line := req.Line
		if line != nil {
			if req.Kind == reqOutputWrapped {
				line = line.Clone().WrapToWidth(w.term.Width())
			}
			_ = w.rd.rollIn(e)
			_ = w.rd.outputLine(line)
		}
		e.rolloutNeeded = true
	case reqStatus:
		e.status = req.Line
		e.rolloutNeeded = true
	case reqPrompt:
		e.prompt = req.PromptLine
		e.inputAllowed = req.PromptInput
		if req.PromptClear {
			e.input = ""
			e.inputCursor = 0
			e.historyIndex = -1
			e.historyShadow = ""
			e.historyOriginal = ""
		}
		e.rolloutNeeded = true
	case reqNotice:
		e.notice = req.Line
		e.hasNotice = e.notice != nil
		e.noticeDeadline = time.Now().Add(req.NoticeDuration)
		e.rolloutNeeded = true
	case reqBell:
		_ = w.term.Bell()
	case reqSuspendAndRun:
		if req.SuspendAndRun != nil {
			_ = w.rd.rollIn(e)
			_ = w.term.Suspend()
			req.SuspendAndRun()
			_ = w.term.Unsuspend()
			w.rd.curAttrs = term.Attrs{}
			e.remembered = nil
			e.rolloutNeeded = true
		}
	case reqCustom:
		resp = &Response{Kind: Custom, Custom: req.Custom}
	case reqSetCompletor:
		e.completor = req.Completor
	case reqBumpHistory:
		e.relocateAfterBump()
		e.rolloutNeeded = true
	case reqStderrLine:
		_ = w.rd.rollIn(e)
		_ = w.rd.outputLine(LineFromString(req.StderrLine))
		e.rolloutNeeded = true
	case reqTerminalEvent:
		if e.hasNotice {
			e.dismissNotice()
		}
		out := &Output{reqs: w.reqs}
		resp = e.HandleEvent(req.TerminalEvent, out)
	case reqRawInput:
		resp = &Response{Kind: Input, Text: req.RawInput}
	case reqHeartbeat:
		if e.hasNotice && time.Now().After(e.noticeDeadline) {
			e.dismissNotice()
		}
	case reqDie:
		die = true
	}
	return resp, die
}
