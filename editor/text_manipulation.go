package editor

import (
	"unicode"
	"unicode/utf8"

	"github.com/bulga138/cellpad/buffer"
)

// Insert puts r at the cursor. A line feed splits the line and moves to
// the start of the new one; other control characters are ignored.
func (e *Editor) Insert(r rune) {
	if r == '\n' {
		e.buf.SplitLine(e.cursor.Row, e.cursor.Col)
		e.cursor = buffer.Position{Row: e.cursor.Row + 1}
		e.dirty = true
		e.scroll()
		return
	}
	if unicode.IsControl(r) || !utf8.ValidRune(r) {
		return
	}
	e.buf.InsertRune(e.cursor.Row, e.cursor.Col, r)
	e.dirty = true
	e.MoveRight()
}

// Backspace removes the character before the cursor. At the start of a
// line it joins the line onto the previous one.
func (e *Editor) Backspace() {
	row, col := e.cursor.Row, e.cursor.Col
	switch {
	case row == 0 && col == 0:
		return
	case col == 0:
		prevLen := e.buf.LineLength(row - 1)
		e.buf.JoinNext(row - 1)
		e.cursor = buffer.Position{Row: row - 1, Col: prevLen}
		e.scroll()
	default:
		e.MoveLeft()
		e.buf.DeleteRune(e.cursor.Row, e.cursor.Col)
	}
	e.dirty = true
}

// Delete removes the character under the cursor, or joins the next line
// when the cursor is at the end of its line. The cursor does not move.
func (e *Editor) Delete() {
	row, col := e.cursor.Row, e.cursor.Col
	switch {
	case col < e.buf.LineLength(row):
		e.buf.DeleteRune(row, col)
	case row < e.lastRow():
		e.buf.JoinNext(row)
	default:
		return
	}
	e.dirty = true
	e.scroll()
}

// DeleteWordLeft removes from the cursor back to where MoveWordLeft would
// land. At the start of a line it joins onto the previous line.
func (e *Editor) DeleteWordLeft() {
	end := e.cursor
	e.MoveWordLeft()
	start := e.cursor
	switch {
	case start == end:
		return
	case start.Row != end.Row:
		e.buf.JoinNext(start.Row)
	default:
		e.buf.DeleteRange(start.Row, start.Col, end.Col)
	}
	e.dirty = true
	e.scroll()
}

// DeleteWordRight removes from the cursor up to where MoveWordRight would
// land. The cursor does not move.
func (e *Editor) DeleteWordRight() {
	start := e.cursor
	e.MoveWordRight()
	end := e.cursor
	e.cursor = start
	switch {
	case start == end:
		return
	case start.Row != end.Row:
		e.buf.JoinNext(start.Row)
		e.buf.DeleteRange(start.Row, start.Col, start.Col+end.Col)
	default:
		e.buf.DeleteRange(start.Row, start.Col, end.Col)
	}
	e.dirty = true
	e.scroll()
}

// DuplicateLine copies the cursor line below itself. The cursor stays on
// the original.
func (e *Editor) DuplicateLine() {
	e.buf.DuplicateLine(e.cursor.Row)
	e.dirty = true
	e.scroll()
}

// MoveLineUp swaps the cursor line with the one above; the cursor follows
// the line.
func (e *Editor) MoveLineUp() {
	if e.cursor.Row == 0 {
		return
	}
	e.buf.SwapLines(e.cursor.Row-1, e.cursor.Row)
	e.cursor.Row--
	e.dirty = true
	e.scroll()
}

// MoveLineDown swaps the cursor line with the one below.
func (e *Editor) MoveLineDown() {
	if e.cursor.Row == e.lastRow() {
		return
	}
	e.buf.SwapLines(e.cursor.Row, e.cursor.Row+1)
	e.cursor.Row++
	e.dirty = true
	e.scroll()
}
