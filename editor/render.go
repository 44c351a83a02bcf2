package editor

import "github.com/bulga138/cellpad/render"

// Frame renders the current viewport.
func (e *Editor) Frame() render.Frame {
	return render.Render(e.buf, e.cursor, e.offset, e.rows, e.cols)
}
