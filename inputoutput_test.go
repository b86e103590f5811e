package liso

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInputOutput() (*InputOutput, chan Response) {
	resps := make(chan Response, 8)
	io := &InputOutput{
		Output:  &Output{reqs: make(chan Request, 8)},
		resps:   resps,
		history: NewHistory(),
	}
	return io, resps
}

func TestInputOutput_ReadBlockingReturnsQueuedResponse(t *testing.T) {
	io, resps := newTestInputOutput()
	resps <- Response{Kind: Input, Text: "hi"}
	resp := io.ReadBlocking()
	assert.Equal(t, Input, resp.Kind)
	assert.Equal(t, "hi", resp.Text)
}

func TestInputOutput_ReadBlockingOnClosedChannelReturnsDead(t *testing.T) {
	io, resps := newTestInputOutput()
	close(resps)
	resp := io.ReadBlocking()
	assert.Equal(t, Dead, resp.Kind)
}

func TestInputOutput_TryRead(t *testing.T) {
	io, resps := newTestInputOutput()
	_, ok := io.TryRead()
	assert.False(t, ok)

	resps <- Response{Kind: Quit}
	resp, ok := io.TryRead()
	require.True(t, ok)
	assert.Equal(t, Quit, resp.Kind)
}

func TestInputOutput_ReadTimeout_ExpiresWithoutResponse(t *testing.T) {
	io, _ := newTestInputOutput()
	_, err := io.ReadTimeout(10 * time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestInputOutput_ReadTimeout_ReturnsResponseBeforeDeadline(t *testing.T) {
	io, resps := newTestInputOutput()
	resps <- Response{Kind: Info}
	resp, err := io.ReadTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, Info, resp.Kind)
}

func TestInputOutput_RepeatedDeadReadsEventuallyPanic(t *testing.T) {
	io, resps := newTestInputOutput()
	close(resps)
	assert.NotPanics(t, func() {
		for i := 0; i < maxToleratedDeadReads; i++ {
			io.ReadBlocking()
		}
	})
	assert.Panics(t, func() {
		io.ReadBlocking()
	})
}

func TestInputOutput_History(t *testing.T) {
	h := NewHistory()
	io, _ := newTestInputOutput()
	io.history = h
	assert.Same(t, h, io.History())
}

func TestGlobalOutput_PanicsWithoutLiveInstance(t *testing.T) {
	globalMu.Lock()
	wasAlive, savedOut := globalAlive, globalOutput
	globalAlive, globalOutput = false, nil
	globalMu.Unlock()
	defer func() {
		globalMu.Lock()
		globalAlive, globalOutput = wasAlive, savedOut
		globalMu.Unlock()
	}()

	assert.Panics(t, func() { GlobalOutput() })
}

func TestNewWithHistory_PanicsOnDoubleConstruction(t *testing.T) {
	globalMu.Lock()
	wasAlive, savedOut := globalAlive, globalOutput
	globalMu.Unlock()
	defer func() {
		globalMu.Lock()
		globalAlive, globalOutput = wasAlive, savedOut
		globalMu.Unlock()
	}()

	globalMu.Lock()
	globalAlive = true
	globalOutput = &Output{reqs: make(chan Request)}
	globalMu.Unlock()

	assert.Panics(t, func() { NewWithHistory(NewHistory()) })
}
