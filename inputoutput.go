package liso

import (
	"errors"
	"sync"
	"time"
)

// ErrTimeout is returned by ReadTimeout and ReadDeadline when no response
// arrives before the bound elapses.
var ErrTimeout = errors.New("liso: read timed out")

var (
	globalMu     sync.Mutex
	globalAlive  bool
	globalOutput *Output
)

// InputOutput is the singleton input-capable handle: at most one may exist
// process-wide at a time. It embeds Output, so every output method is also
// available directly on it.
type InputOutput struct {
	*Output
	resps    <-chan Response
	history  *History
	deadSeen int
	dieOnce  sync.Once
}

// New starts the worker and its auxiliary goroutines and returns the
// process's singleton InputOutput, using a fresh in-memory History.
// Constructing a second InputOutput while one is alive panics.
func New() *InputOutput {
	return newWithHistory(NewHistory())
}

// NewWithHistory is like New, but installs hist as the worker's backing
// History; the caller retains the same *History and may call Swap/Save on
// it directly, followed by Output.BumpHistory to make the worker relocate
// its navigation cursor.
func NewWithHistory(hist *History) *InputOutput {
	return newWithHistory(hist)
}

func newWithHistory(hist *History) *InputOutput {
	globalMu.Lock()
	if globalAlive {
		globalMu.Unlock()
		panic("liso: an InputOutput already exists")
	}
	globalAlive = true
	globalMu.Unlock()

	reqs := make(chan Request, 64)
	resps := make(chan Response, 16)

	out := &Output{reqs: reqs}
	globalMu.Lock()
	globalOutput = out
	globalMu.Unlock()

	if pipeMode() {
		go runPipeWorker(reqs, resps)
		go startPipeInputReader(reqs, nil)
	} else {
		go runWorker(reqs, resps, hist)
	}

	return &InputOutput{
		Output:  out,
		resps:   resps,
		history: hist,
	}
}

// GlobalOutput returns the Output belonging to the currently-alive
// InputOutput, for code that doesn't want to thread a handle through every
// call. It panics if no InputOutput is currently alive.
func GlobalOutput() *Output {
	globalMu.Lock()
	defer globalMu.Unlock()
	if !globalAlive || globalOutput == nil {
		panic("liso: no InputOutput is alive")
	}
	return globalOutput
}

// History returns the History backing this InputOutput's worker.
func (io *InputOutput) History() *History { return io.history }

// maxToleratedDeadReads is a runaway-bug guard: a caller that keeps
// reading after Dead has already been observed almost certainly has a
// logic error, so it gets a panic instead of spinning forever.
const maxToleratedDeadReads = 9

func (io *InputOutput) noteDead() {
	io.deadSeen++
	if io.deadSeen > maxToleratedDeadReads {
		panic("liso: read from InputOutput after it died too many times")
	}
}

// ReadBlocking blocks the calling goroutine until a Response is available.
func (io *InputOutput) ReadBlocking() Response {
	resp, ok := <-io.resps
	if !ok {
		io.noteDead()
		return Response{Kind: Dead}
	}
	return resp
}

// TryRead returns immediately: a Response and true if one was already
// available, or false if not.
func (io *InputOutput) TryRead() (Response, bool) {
	select {
	case resp, ok := <-io.resps:
		if !ok {
			io.noteDead()
			return Response{Kind: Dead}, true
		}
		return resp, true
	default:
		return Response{}, false
	}
}

// ReadTimeout waits up to d for a Response, returning ErrTimeout if none
// arrives in time.
func (io *InputOutput) ReadTimeout(d time.Duration) (Response, error) {
	return io.ReadDeadline(time.Now().Add(d))
}

// ReadDeadline waits until deadline for a Response, returning ErrTimeout if
// none arrives in time.
func (io *InputOutput) ReadDeadline(deadline time.Time) (Response, error) {
	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()
	select {
	case resp, ok := <-io.resps:
		if !ok {
			io.noteDead()
			return Response{Kind: Dead}, nil
		}
		return resp, nil
	case <-timer.C:
		return Response{}, ErrTimeout
	}
}

// Die requests worker shutdown and blocks until the Dead response is
// observed, draining and discarding any responses in between. Calling Die
// more than once is harmless; later calls return immediately.
func (io *InputOutput) Die() {
	io.dieOnce.Do(func() {
		defer func() { recover() }()
		io.send(dieRequest())
	})
	for {
		resp, ok := <-io.resps
		if !ok {
			break
		}
		if resp.Kind == Dead {
			break
		}
	}
	globalMu.Lock()
	if globalOutput == io.Output {
		globalAlive = false
		globalOutput = nil
	}
	globalMu.Unlock()
}
