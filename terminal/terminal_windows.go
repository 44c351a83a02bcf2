//go:build windows

package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// New reads keys from CONIN$ so that input keeps working when stdin is
// redirected.
func New() Terminal {
	h, err := openConsole("CONIN$")
	if err != nil {
		return &stdTerminal{in: os.Stdin, out: os.Stdout}
	}
	return &stdTerminal{in: os.NewFile(uintptr(h), "CONIN$"), out: os.Stdout, ownsIn: true}
}

func openConsole(name string) (windows.Handle, error) {
	return windows.CreateFile(
		windows.StringToUTF16Ptr(name),
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
}

// makeRaw turns off line input and echo and enables virtual terminal
// sequences on both handles, so the ANSI decoder and renderer behave as on
// unix.
func makeRaw(in, out *os.File) (func() error, error) {
	inHandle := windows.Handle(in.Fd())
	outHandle := windows.Handle(out.Fd())

	var inMode, outMode uint32
	if err := windows.GetConsoleMode(inHandle, &inMode); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotTerminal, err)
	}
	if err := windows.GetConsoleMode(outHandle, &outMode); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotTerminal, err)
	}

	rawIn := inMode&^(windows.ENABLE_ECHO_INPUT|windows.ENABLE_LINE_INPUT|windows.ENABLE_PROCESSED_INPUT) |
		windows.ENABLE_VIRTUAL_TERMINAL_INPUT
	if err := windows.SetConsoleMode(inHandle, rawIn); err != nil {
		return nil, err
	}
	if err := windows.SetConsoleMode(outHandle, outMode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		windows.SetConsoleMode(inHandle, inMode)
		return nil, err
	}

	return func() error {
		return errors.Join(
			windows.SetConsoleMode(inHandle, inMode),
			windows.SetConsoleMode(outHandle, outMode),
		)
	}, nil
}

// windowSize reports the visible window, not the scrollback buffer. It
// asks CONOUT$ when stdout is redirected.
func windowSize(out *os.File) (width, height int, err error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(out.Fd()), &info); err != nil {
		h, openErr := openConsole("CONOUT$")
		if openErr != nil {
			return 0, 0, err
		}
		defer windows.CloseHandle(h)
		if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
			return 0, 0, err
		}
	}
	width = int(info.Window.Right - info.Window.Left + 1)
	height = int(info.Window.Bottom - info.Window.Top + 1)
	return width, height, nil
}
