package terminal

import (
	"io"
	"log"

	"github.com/bulga138/cellpad/input"
	"github.com/bulga138/cellpad/render"
)

const (
	ansiEnterAltScreen = "\x1b[?1049h"
	ansiExitAltScreen  = "\x1b[?1049l"
	ansiReset          = "\x1b[0m"
	ansiShowCursor     = "\x1b[?25h"

	fallbackWidth  = 80
	fallbackHeight = 24
)

// ANSIScreen drives a Terminal directly with escape sequences and decodes
// keys from its raw input.
type ANSIScreen struct {
	term Terminal
	out  io.Writer
	dec  *input.Decoder
}

func NewANSIScreen(term Terminal, out io.Writer) *ANSIScreen {
	return &ANSIScreen{
		term: term,
		out:  out,
		dec:  input.NewDecoder(term.Stdin()),
	}
}

// Init enters raw mode and the alternate screen.
func (s *ANSIScreen) Init() error {
	if err := s.term.EnableRawMode(); err != nil {
		return err
	}
	if _, err := io.WriteString(s.out, ansiEnterAltScreen); err != nil {
		s.term.DisableRawMode()
		return err
	}
	return nil
}

// Fini leaves the alternate screen and restores the terminal mode.
func (s *ANSIScreen) Fini() {
	io.WriteString(s.out, ansiReset+ansiShowCursor+ansiExitAltScreen)
	if err := s.term.DisableRawMode(); err != nil {
		log.Printf("terminal: %v", err)
	}
}

// Size returns rows and columns. When the terminal cannot be queried it
// falls back to 24x80.
func (s *ANSIScreen) Size() (rows, cols int, err error) {
	w, h, err := s.term.GetWindowSize()
	if err != nil || w <= 0 || h <= 0 {
		return fallbackHeight, fallbackWidth, nil
	}
	return h, w, nil
}

func (s *ANSIScreen) ReadCommand() (input.Command, error) {
	return s.dec.Next()
}

func (s *ANSIScreen) Draw(frame render.Frame) error {
	_, err := frame.WriteTo(s.out)
	return err
}
