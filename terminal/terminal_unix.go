//go:build !windows

package terminal

import (
	"os"

	"golang.org/x/term"
)

func New() Terminal {
	return &stdTerminal{in: os.Stdin, out: os.Stdout}
}

func makeRaw(in, _ *os.File) (func() error, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(fd, state) }, nil
}

func windowSize(out *os.File) (width, height int, err error) {
	return term.GetSize(int(out.Fd()))
}
