//go:build windows

package liso

// raiseSelfStop is a no-op on Windows: there is no SIGSTOP equivalent, and
// Ctrl-Z is documented as a UNIX-only binding.
func raiseSelfStop() {}
