package editor

import (
	"log"

	"github.com/bulga138/cellpad/input"
)

// Apply executes one command. Save failures are reported through the
// status message and the log; the editor keeps running.
func (e *Editor) Apply(cmd input.Command) {
	switch cmd.Kind {
	case input.MoveUp:
		e.MoveUp()
	case input.MoveDown:
		e.MoveDown()
	case input.MoveLeft:
		e.MoveLeft()
	case input.MoveRight:
		e.MoveRight()
	case input.Home:
		e.MoveLineStart()
	case input.End:
		e.MoveLineEnd()
	case input.PageUp:
		e.MovePageUp()
	case input.PageDown:
		e.MovePageDown()
	case input.DocStart:
		e.MoveDocStart()
	case input.DocEnd:
		e.MoveDocEnd()
	case input.WordLeft:
		e.MoveWordLeft()
	case input.WordRight:
		e.MoveWordRight()
	case input.InsertChar:
		e.Insert(cmd.Rune)
	case input.Backspace:
		e.Backspace()
	case input.Delete:
		e.Delete()
	case input.DeleteWordLeft:
		e.DeleteWordLeft()
	case input.DeleteWordRight:
		e.DeleteWordRight()
	case input.DuplicateLine:
		e.DuplicateLine()
	case input.MoveLineUp:
		e.MoveLineUp()
	case input.MoveLineDown:
		e.MoveLineDown()
	case input.Save:
		if err := e.Save(); err != nil {
			log.Printf("editor: %v", err)
		}
	case input.Quit:
		if e.Modified() {
			log.Printf("editor: quitting with unsaved changes to %q", e.filename)
		}
		e.quit = true
	}
}
