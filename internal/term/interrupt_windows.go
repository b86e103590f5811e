//go:build windows

package term

import (
	"sync"

	"golang.org/x/sys/windows"
)

// StdinInterrupter cancels a blocked read of stdin from another goroutine.
// Windows has no signal-based equivalent of the Unix approach, so this
// uses CancelIoEx against the console input handle, which wakes a pending
// ReadFile the same way a signal would wake a blocked read(2).
type StdinInterrupter struct {
	mu     sync.Mutex
	handle windows.Handle
}

// NewStdinInterrupter returns an interrupter bound to the process's stdin
// console handle.
func NewStdinInterrupter() *StdinInterrupter {
	h, _ := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	return &StdinInterrupter{handle: h}
}

// Interrupt cancels any I/O currently pending against stdin. The returned
// restore function is a no-op on Windows; CancelIoEx doesn't leave the
// handle in a state that needs repair.
func (s *StdinInterrupter) Interrupt() (restore func(), err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handle == 0 || s.handle == windows.InvalidHandle {
		return func() {}, nil
	}
	if err := windows.CancelIoEx(s.handle, nil); err != nil {
		if err == windows.ERROR_NOT_FOUND {
			// Nothing was pending; not an error for our purposes.
			return func() {}, nil
		}
		return nil, err
	}
	return func() {}, nil
}
