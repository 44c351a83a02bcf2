package render

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/bulga138/cellpad/runewidth"
)

// DrawTcell paints the frame onto a tcell screen and shows it. Columns are
// advanced with table so cells line up with the cursor placement computed
// from the buffer's width cache. Zero-width marks are attached to the
// preceding cell as combining characters.
func (f Frame) DrawTcell(s tcell.Screen, table *runewidth.Table) {
	if table == nil {
		table = runewidth.Default
	}
	for _, in := range f {
		switch in.Op {
		case OpClear:
			s.Clear()
		case OpText:
			drawRow(s, table, in.Row, in.Text)
		case OpPlaceCursor:
			s.ShowCursor(in.Col, in.Row)
		}
	}
	s.Show()
}

func drawRow(s tcell.Screen, table *runewidth.Table, y int, text string) {
	x, lastX := 0, -1
	var mainc rune
	var combc []rune
	for _, r := range text {
		w := table.RuneWidth(r)
		if w == 0 {
			if lastX < 0 || unicode.IsControl(r) {
				continue
			}
			combc = append(combc[:len(combc):len(combc)], r)
			s.SetContent(lastX, y, mainc, combc, tcell.StyleDefault)
			continue
		}
		mainc, combc, lastX = r, nil, x
		s.SetContent(x, y, r, nil, tcell.StyleDefault)
		x += w
	}
}
