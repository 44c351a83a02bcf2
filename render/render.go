package render

import (
	"github.com/bulga138/cellpad/buffer"
)

// Op identifies a draw instruction.
type Op int

const (
	OpClear Op = iota
	OpText
	OpLineBreak
	OpPlaceCursor
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpText:
		return "text"
	case OpLineBreak:
		return "break"
	case OpPlaceCursor:
		return "cursor"
	}
	return "unknown"
}

// Instruction is one terminal write. Row is the screen row for OpText and
// OpPlaceCursor; Col is the display column for OpPlaceCursor.
type Instruction struct {
	Op   Op
	Text string
	Row  int
	Col  int
}

// Frame is the full instruction sequence for one screen refresh.
type Frame []Instruction

// Render draws the rows [offset, offset+rows) of buf that exist, clipped to
// cols display columns, and places the cursor. It only reads its inputs.
func Render(buf buffer.Buffer, cursor buffer.Position, offset, rows, cols int) Frame {
	end := min(offset+rows, buf.LineCount())

	frame := make(Frame, 0, 2*(end-offset)+2)
	frame = append(frame, Instruction{Op: OpClear})

	for row := offset; row < end; row++ {
		if row > offset {
			frame = append(frame, Instruction{Op: OpLineBreak})
		}
		frame = append(frame, Instruction{
			Op:   OpText,
			Text: visibleText(buf, row, cols),
			Row:  row - offset,
		})
	}

	frame = append(frame, Instruction{
		Op:  OpPlaceCursor,
		Row: cursor.Row - offset,
		Col: buf.DisplayColumn(cursor.Row, cursor.Col),
	})
	return frame
}

// visibleText returns the characters of row whose cells fit in cols.
// A wide glyph straddling the right edge is dropped.
func visibleText(buf buffer.Buffer, row, cols int) string {
	n := buf.LineLength(row)
	runes := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		if buf.Start(row, i+1) > cols {
			break
		}
		runes = append(runes, buf.CharAt(row, i))
	}
	return string(runes)
}
