package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrNotTerminal = errors.New("not a terminal")

// Terminal is the raw-mode and geometry side of the controlling terminal.
type Terminal interface {
	EnableRawMode() error
	DisableRawMode() error
	GetWindowSize() (width, height int, err error)
	Stdin() io.Reader
	Close() error
}

// stdTerminal drives the process's console. The platform files supply
// makeRaw, which returns the function that undoes it, and windowSize.
type stdTerminal struct {
	in      *os.File
	out     *os.File
	ownsIn  bool
	restore func() error
}

func (t *stdTerminal) Stdin() io.Reader {
	return t.in
}

func (t *stdTerminal) Close() error {
	if t.ownsIn {
		return t.in.Close()
	}
	return nil
}

func (t *stdTerminal) EnableRawMode() error {
	restore, err := makeRaw(t.in, t.out)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	t.restore = restore
	return nil
}

func (t *stdTerminal) DisableRawMode() error {
	if t.restore == nil {
		return nil
	}
	err := t.restore()
	t.restore = nil
	if err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	return nil
}

func (t *stdTerminal) GetWindowSize() (width, height int, err error) {
	width, height, err = windowSize(t.out)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get window size: %w", err)
	}
	return width, height, nil
}
