package liso

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutput_EnqueuesExpectedRequestKinds(t *testing.T) {
	reqs := make(chan Request, 16)
	out := &Output{reqs: reqs}

	l := LineFromString("hi")
	out.Output(l)
	out.OutputEcho(l)
	out.OutputWrapped(l)
	out.Status(l)
	out.Prompt(l, true, false)
	out.Notice(l, time.Second)
	out.Bell()
	out.SetCompletor(nil)
	out.BumpHistory()
	out.SendCustom(42)

	want := []requestKind{
		reqOutput, reqOutputEcho, reqOutputWrapped, reqStatus, reqPrompt,
		reqNotice, reqBell, reqSetCompletor, reqBumpHistory, reqCustom,
	}
	for _, k := range want {
		select {
		case req := <-reqs:
			assert.Equal(t, k, req.Kind)
		default:
			t.Fatalf("expected a queued %v request", k)
		}
	}
}

func TestOutput_PromptCarriesFlags(t *testing.T) {
	reqs := make(chan Request, 1)
	out := &Output{reqs: reqs}
	out.Prompt(nil, false, true)
	req := <-reqs
	assert.False(t, req.PromptInput)
	assert.True(t, req.PromptClear)
}

func TestOutput_SendAfterCloseConvertsToFixedPanic(t *testing.T) {
	reqs := make(chan Request)
	close(reqs)
	out := &Output{reqs: reqs}

	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.Equal(t, "liso output has stopped", r)
	}()
	out.Bell()
}

func TestOutput_SuspendAndRunCarriesFunc(t *testing.T) {
	reqs := make(chan Request, 1)
	out := &Output{reqs: reqs}
	called := false
	out.SuspendAndRun(func() { called = true })
	req := <-reqs
	require.NotNil(t, req.SuspendAndRun)
	req.SuspendAndRun()
	assert.True(t, called)
}
