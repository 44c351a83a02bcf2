package editor

import (
	"unicode"

	"github.com/bulga138/cellpad/buffer"
)

// Every movement ends with scroll so the cursor row stays on screen.

func (e *Editor) MoveLeft() {
	switch {
	case e.cursor.Col > 0:
		e.cursor.Col--
	case e.cursor.Row > 0:
		e.cursor.Row--
		e.cursor.Col = e.buf.LineLength(e.cursor.Row)
	}
	e.scroll()
}

func (e *Editor) MoveRight() {
	switch {
	case e.cursor.Col < e.buf.LineLength(e.cursor.Row):
		e.cursor.Col++
	case e.cursor.Row < e.lastRow():
		e.cursor.Row++
		e.cursor.Col = 0
	}
	e.scroll()
}

// MoveUp keeps the display column. On the first row it goes to column 0.
func (e *Editor) MoveUp() {
	if e.cursor.Row == 0 {
		e.cursor.Col = 0
	} else {
		e.moveToRow(e.cursor.Row - 1)
	}
	e.scroll()
}

// MoveDown keeps the display column. On the last row it goes to column 0.
func (e *Editor) MoveDown() {
	if e.cursor.Row == e.lastRow() {
		e.cursor.Col = 0
	} else {
		e.moveToRow(e.cursor.Row + 1)
	}
	e.scroll()
}

func (e *Editor) MoveLineStart() {
	e.cursor.Col = 0
	e.scroll()
}

func (e *Editor) MoveLineEnd() {
	e.cursor.Col = e.buf.LineLength(e.cursor.Row)
	e.scroll()
}

func (e *Editor) MovePageUp() {
	e.moveToRow(max(e.cursor.Row-e.rows, 0))
	e.scroll()
}

func (e *Editor) MovePageDown() {
	e.moveToRow(min(e.cursor.Row+e.rows, e.lastRow()))
	e.scroll()
}

func (e *Editor) MoveDocStart() {
	e.cursor.Row = 0
	e.cursor.Col = 0
	e.scroll()
}

func (e *Editor) MoveDocEnd() {
	e.cursor.Row = e.lastRow()
	e.cursor.Col = e.buf.LineLength(e.cursor.Row)
	e.scroll()
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

func isPunctChar(r rune) bool {
	return !isWordChar(r) && !unicode.IsSpace(r)
}

// MoveWordRight skips the run of word or punctuation characters under the
// cursor and the spaces after it. At the end of a line it continues from
// the start of the next one.
func (e *Editor) MoveWordRight() {
	row, col := e.cursor.Row, e.cursor.Col
	if col == e.buf.LineLength(row) {
		if row == e.lastRow() {
			return
		}
		row, col = row+1, 0
	}

	n := e.buf.LineLength(row)
	if col < n {
		switch r := e.buf.CharAt(row, col); {
		case isWordChar(r):
			for col < n && isWordChar(e.buf.CharAt(row, col)) {
				col++
			}
		case isPunctChar(r):
			for col < n && isPunctChar(e.buf.CharAt(row, col)) {
				col++
			}
		}
		for col < n && unicode.IsSpace(e.buf.CharAt(row, col)) {
			col++
		}
	}
	e.cursor = buffer.Position{Row: row, Col: col}
	e.scroll()
}

// MoveWordLeft goes to the start of the previous word. At column 0 it only
// steps to the end of the previous line.
func (e *Editor) MoveWordLeft() {
	row, col := e.cursor.Row, e.cursor.Col
	if col == 0 {
		if row > 0 {
			e.cursor = buffer.Position{Row: row - 1, Col: e.buf.LineLength(row - 1)}
			e.scroll()
		}
		return
	}

	col--
	for col >= 0 && unicode.IsSpace(e.buf.CharAt(row, col)) {
		col--
	}
	if col >= 0 {
		word := isWordChar(e.buf.CharAt(row, col))
		for col >= 0 && isWordChar(e.buf.CharAt(row, col)) == word && !unicode.IsSpace(e.buf.CharAt(row, col)) {
			col--
		}
	}
	e.cursor.Col = col + 1
	e.scroll()
}

// moveToRow changes row, picking the character that covers the current
// display column on the new line (or its end if the line is shorter).
func (e *Editor) moveToRow(row int) {
	target := e.buf.DisplayColumn(e.cursor.Row, e.cursor.Col)
	e.cursor.Row = row
	e.cursor.Col = e.buf.CharIndexAt(row, target)
}

func (e *Editor) lastRow() int {
	return e.buf.LineCount() - 1
}

// scroll keeps offset <= cursor row < offset+rows, and never scrolls past
// the point where the last line sits on the bottom row.
func (e *Editor) scroll() {
	row := e.cursor.Row
	e.offset = min(e.offset, row)
	if row+1 >= e.rows+e.offset {
		e.offset = max(e.offset, row+1-e.rows)
	}
	e.offset = min(e.offset, max(0, e.buf.LineCount()-e.rows))
}
