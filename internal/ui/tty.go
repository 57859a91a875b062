package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// StdoutIsTTY reports whether stdout is an interactive terminal. Interactive
// pickers and color output default to off when this is false (CI, pipes,
// redirected output).
func StdoutIsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
