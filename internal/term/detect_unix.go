//go:build !windows

package term

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether fd refers to an interactive terminal.
func IsTTY(fd int) bool {
	return term.IsTerminal(fd)
}

// StdinIsTTY reports whether standard input is a terminal.
func StdinIsTTY() bool {
	return IsTTY(int(os.Stdin.Fd()))
}

// StdoutIsTTY reports whether standard output is a terminal.
func StdoutIsTTY() bool {
	return IsTTY(int(os.Stdout.Fd()))
}
