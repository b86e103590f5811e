package liso

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartHeartbeat_SendsRequestsAtInterval(t *testing.T) {
	reqs := make(chan Request, 4)
	done := make(chan struct{})
	go startHeartbeat(reqs, done)
	defer close(done)

	select {
	case req := <-reqs:
		assert.Equal(t, reqHeartbeat, req.Kind)
	case <-time.After(heartbeatInterval * 5):
		t.Fatal("expected at least one heartbeat request")
	}
}

func TestStartHeartbeat_StopsWhenDoneCloses(t *testing.T) {
	reqs := make(chan Request, 16)
	done := make(chan struct{})
	go startHeartbeat(reqs, done)

	require.Eventually(t, func() bool {
		select {
		case <-reqs:
			return true
		default:
			return false
		}
	}, heartbeatInterval*5, time.Millisecond)

	close(done)
	// Drain whatever was already in flight, then make sure nothing new
	// shows up for a few more intervals.
	time.Sleep(heartbeatInterval)
	for {
		select {
		case <-reqs:
			continue
		default:
		}
		break
	}
	time.Sleep(heartbeatInterval * 3)
	assert.Empty(t, reqs)
}
