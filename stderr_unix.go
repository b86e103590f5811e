//go:build !windows

package liso

import (
	"bufio"
	"os"

	"golang.org/x/sys/unix"
)

const stderrFD = 2

// StartStderrCapture redirects the process's stderr through a pipe for the
// lifetime of the returned restore function: each complete line read from
// the pipe is enqueued as a StderrLine request, interleaving into the
// composite the same way any other producer's output would. Restoring
// puts the original fd 2 back, tells the reader goroutine to stop and
// closes the pipe; lines not yet read from the pipe are discarded.
func StartStderrCapture(out *Output) (restore func(), err error) {
	savedFD, err := unix.Dup(stderrFD)
	if err != nil {
		return nil, err
	}
	var fds [2]int
	if err := unix.Pipe(fds[:]); err != nil {
		_ = unix.Close(savedFD)
		return nil, err
	}
	readEnd, writeEnd := fds[0], fds[1]
	if err := unix.Dup2(writeEnd, stderrFD); err != nil {
		_ = unix.Close(readEnd)
		_ = unix.Close(writeEnd)
		_ = unix.Close(savedFD)
		return nil, err
	}
	_ = unix.Close(writeEnd)

	reader := os.NewFile(uintptr(readEnd), "liso-stderr-capture")
	done := make(chan struct{})
	go func() {
		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			select {
			case out.reqs <- stderrLineRequest(scanner.Text()):
			case <-done:
				return
			}
		}
	}()

	restored := false
	restore = func() {
		if restored {
			return
		}
		restored = true
		_ = unix.Dup2(savedFD, stderrFD)
		_ = unix.Close(savedFD)
		close(done)
		_ = reader.Close()
	}
	return restore, nil
}
