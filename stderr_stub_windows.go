//go:build windows

package liso

import "errors"

// StartStderrCapture is unavailable on Windows, matching the narrower
// platform scope of the original stderr-capture add-on.
func StartStderrCapture(out *Output) (restore func(), err error) {
	return nil, errors.New("liso: stderr capture is not supported on Windows")
}
