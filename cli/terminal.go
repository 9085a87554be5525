package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

var ErrTerminalOutput = errors.New("compressed data not written to a terminal")

// EnsureNotTerminal refuses to write binary output to an interactive
// terminal.
func EnsureNotTerminal(f *os.File) error {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return ErrTerminalOutput
	}
	return nil
}
