package input

import "github.com/gdamore/tcell/v2"

// FromTcell maps a tcell key event onto a Command.
func FromTcell(ev *tcell.EventKey) Command {
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	alt := ev.Modifiers()&tcell.ModAlt != 0

	switch ev.Key() {
	case tcell.KeyUp:
		if alt {
			return Command{Kind: MoveLineUp}
		}
		return Command{Kind: MoveUp}
	case tcell.KeyDown:
		if alt {
			return Command{Kind: MoveLineDown}
		}
		return Command{Kind: MoveDown}
	case tcell.KeyLeft:
		if ctrl {
			return Command{Kind: WordLeft}
		}
		return Command{Kind: MoveLeft}
	case tcell.KeyRight:
		if ctrl {
			return Command{Kind: WordRight}
		}
		return Command{Kind: MoveRight}
	case tcell.KeyHome:
		if ctrl {
			return Command{Kind: DocStart}
		}
		return Command{Kind: Home}
	case tcell.KeyEnd:
		if ctrl {
			return Command{Kind: DocEnd}
		}
		return Command{Kind: End}
	case tcell.KeyPgUp:
		return Command{Kind: PageUp}
	case tcell.KeyPgDn:
		return Command{Kind: PageDown}
	case tcell.KeyEnter:
		return Insert('\n')
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if ctrl || alt {
			return Command{Kind: DeleteWordLeft}
		}
		return Command{Kind: Backspace}
	case tcell.KeyDelete:
		if ctrl {
			return Command{Kind: DeleteWordRight}
		}
		return Command{Kind: Delete}
	case tcell.KeyCtrlW:
		return Command{Kind: DeleteWordLeft}
	case tcell.KeyCtrlD:
		return Command{Kind: DuplicateLine}
	case tcell.KeyCtrlS:
		return Command{Kind: Save}
	case tcell.KeyCtrlQ:
		return Command{Kind: Quit}
	case tcell.KeyRune:
		// Some terminals report ctrl chords as a modified rune.
		if ctrl {
			switch ev.Rune() {
			case 's', 'S':
				return Command{Kind: Save}
			case 'q', 'Q':
				return Command{Kind: Quit}
			case 'w', 'W':
				return Command{Kind: DeleteWordLeft}
			case 'd', 'D':
				return Command{Kind: DuplicateLine}
			}
			return Command{Kind: Unknown}
		}
		return Insert(ev.Rune())
	}
	return Command{Kind: Unknown}
}
