package terminal

import (
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/bulga138/cellpad/input"
	"github.com/bulga138/cellpad/render"
	"github.com/bulga138/cellpad/runewidth"
)

// TcellScreen runs the editor on top of a tcell.Screen, which takes care
// of terminfo, raw mode and resize notifications.
type TcellScreen struct {
	screen tcell.Screen
	table  *runewidth.Table
}

func NewTcellScreen(screen tcell.Screen, table *runewidth.Table) *TcellScreen {
	return &TcellScreen{screen: screen, table: table}
}

func (s *TcellScreen) Init() error {
	return s.screen.Init()
}

func (s *TcellScreen) Fini() {
	s.screen.Fini()
}

func (s *TcellScreen) Size() (rows, cols int, err error) {
	w, h := s.screen.Size()
	return h, w, nil
}

// ReadCommand waits for the next key. A resize is reported as an Unknown
// command so the caller redraws with the new geometry. io.EOF is returned
// once the screen has been finalized.
func (s *TcellScreen) ReadCommand() (input.Command, error) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return input.Command{}, io.EOF
		case *tcell.EventKey:
			return input.FromTcell(ev), nil
		case *tcell.EventResize:
			s.screen.Sync()
			return input.Command{Kind: input.Unknown}, nil
		}
	}
}

func (s *TcellScreen) Draw(frame render.Frame) error {
	frame.DrawTcell(s.screen, s.table)
	return nil
}
