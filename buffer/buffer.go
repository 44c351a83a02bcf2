package buffer

import "io"

// Position is a cursor location in character coordinates.
// Col may equal the line length, meaning "after the last character".
type Position struct {
	Row int
	Col int
}

// Buffer is the read side of a text buffer, as seen by the renderer.
type Buffer interface {
	// LineCount returns the number of lines. It is always at least 1.
	LineCount() int

	// LineLength returns the number of characters on a line.
	LineLength(row int) int

	// CharAt returns the character at (row, col).
	// It must not be called with col == LineLength(row).
	CharAt(row, col int) rune

	// Start returns the display column at which character i begins.
	// Start(row, LineLength(row)) is the width of the whole line.
	Start(row, i int) int

	// DisplayColumn converts a character index into the display column a
	// cursor at that index occupies.
	DisplayColumn(row, col int) int

	// CharIndexAt converts a display column into the character index whose
	// cells cover it, or the line length if none does.
	CharIndexAt(row, displayCol int) int

	// WriteTo writes the serialized document to w.
	WriteTo(w io.Writer) (int64, error)
}
