package input

import "strconv"

// Kind enumerates the editor commands produced by the input backends.
type Kind int

const (
	Unknown Kind = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Home
	End
	PageUp
	PageDown
	DocStart
	DocEnd
	InsertChar
	Backspace
	Delete
	Save
	Quit
	WordLeft
	WordRight
	DeleteWordLeft
	DeleteWordRight
	DuplicateLine
	MoveLineUp
	MoveLineDown
)

var kindNames = [...]string{
	Unknown:    "Unknown",
	MoveUp:     "MoveUp",
	MoveDown:   "MoveDown",
	MoveLeft:   "MoveLeft",
	MoveRight:  "MoveRight",
	Home:       "Home",
	End:        "End",
	PageUp:     "PageUp",
	PageDown:   "PageDown",
	DocStart:   "DocStart",
	DocEnd:     "DocEnd",
	InsertChar: "InsertChar",
	Backspace:  "Backspace",
	Delete:     "Delete",
	Save:       "Save",
	Quit:       "Quit",

	WordLeft:        "WordLeft",
	WordRight:       "WordRight",
	DeleteWordLeft:  "DeleteWordLeft",
	DeleteWordRight: "DeleteWordRight",
	DuplicateLine:   "DuplicateLine",
	MoveLineUp:      "MoveLineUp",
	MoveLineDown:    "MoveLineDown",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Command is one discrete editor command. Rune is set for InsertChar.
type Command struct {
	Kind Kind
	Rune rune
}

// Insert is shorthand for an InsertChar command.
func Insert(r rune) Command {
	return Command{Kind: InsertChar, Rune: r}
}

func (c Command) String() string {
	if c.Kind == InsertChar {
		return "InsertChar(" + strconv.QuoteRune(c.Rune) + ")"
	}
	return c.Kind.String()
}
