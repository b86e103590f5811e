//go:build windows

package term

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether fd refers to an interactive console.
func IsTTY(fd int) bool {
	return term.IsTerminal(fd)
}

// StdinIsTTY reports whether standard input is a console.
func StdinIsTTY() bool {
	return IsTTY(int(os.Stdin.Fd()))
}

// StdoutIsTTY reports whether standard output is a console.
func StdoutIsTTY() bool {
	return IsTTY(int(os.Stdout.Fd()))
}
