package render

import (
	"bytes"
	"fmt"
	"io"
)

// ANSI escape codes
const (
	ansiHideCursor  = "\x1b[?25l"
	ansiShowCursor  = "\x1b[?25h"
	ansiClearScreen = "\x1b[2J"
	ansiMoveToHome  = "\x1b[H"
)

// WriteTo encodes the frame as ANSI escape sequences and writes it with a
// single call, so the terminal never shows a half-drawn screen.
func (f Frame) WriteTo(w io.Writer) (int64, error) {
	var ab bytes.Buffer
	ab.WriteString(ansiHideCursor)
	for _, in := range f {
		switch in.Op {
		case OpClear:
			ab.WriteString(ansiClearScreen)
			ab.WriteString(ansiMoveToHome)
		case OpText:
			ab.WriteString(in.Text)
		case OpLineBreak:
			// Raw mode disables output post-processing, so a bare \n
			// would not return the carriage.
			ab.WriteString("\r\n")
		case OpPlaceCursor:
			fmt.Fprintf(&ab, "\x1b[%d;%dH", in.Row+1, in.Col+1)
		}
	}
	ab.WriteString(ansiShowCursor)

	n, err := w.Write(ab.Bytes())
	return int64(n), err
}
