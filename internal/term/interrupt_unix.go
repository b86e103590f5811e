//go:build !windows

package term

import (
	"os"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// StdinInterrupter lets the worker cut stdin off from another goroutine
// during shutdown. Interrupt dups the original fd 0 aside and puts the read
// end of a pipe whose write end is already closed in its place, so reads of
// fd 0 that start afterwards see end-of-file. Interrupt sends no signal, so
// a read already blocked in the kernel is not woken by it; SignalReader is
// the separate signalling step.
type StdinInterrupter struct {
	mu       sync.Mutex
	savedFd  int
	replaced bool
}

// NewStdinInterrupter returns an interrupter bound to the process's stdin.
func NewStdinInterrupter() *StdinInterrupter {
	return &StdinInterrupter{savedFd: -1}
}

// dummyHandler is a no-op. Nothing in this package installs it as a signal
// handler.
func dummyHandler() {}

// Interrupt saves the real fd 0 aside and replaces it with the read end of
// an already-closed pipe, so later reads of stdin return end-of-file; a
// read already blocked on stdin is not woken by this. restore() puts the
// saved fd 0 back and must be called before stdin is used again.
func (s *StdinInterrupter) Interrupt() (restore func(), err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := unix.Dup(0)
	if err != nil {
		return nil, err
	}
	r, w, err := os.Pipe()
	if err != nil {
		unix.Close(saved)
		return nil, err
	}
	w.Close()
	if err := unix.Dup2(int(r.Fd()), 0); err != nil {
		r.Close()
		unix.Close(saved)
		return nil, err
	}
	r.Close()
	s.savedFd = saved
	s.replaced = true

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.replaced {
			return
		}
		unix.Dup2(s.savedFd, 0)
		unix.Close(s.savedFd)
		s.savedFd = -1
		s.replaced = false
	}, nil
}

// SignalReader sends a harmless, ignored signal to the OS thread id tid,
// forcing any syscall it's blocked in to return EINTR. On Unix this is
// tgkill with SIGUSR1, which the Go runtime ignores unless the program has
// asked to be notified of it. No handler is installed for it here, and the
// worker does not call SignalReader.
func SignalReader(tid int) error {
	return unix.Tgkill(os.Getpid(), tid, syscall.SIGUSR1)
}
