package input

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// Decoder turns the byte stream of a raw-mode terminal into Commands.
type Decoder struct {
	r *bufio.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Next blocks until a full key has been read. Keys the editor has no
// binding for come back as Unknown rather than as an error.
func (d *Decoder) Next() (Command, error) {
	r, size, err := d.r.ReadRune()
	if err != nil {
		return Command{}, err
	}
	if r == utf8.RuneError && size == 1 {
		return Command{Kind: Unknown}, nil
	}

	switch r {
	case '\x1b':
		return d.escape()
	case '\r':
		// A pasted CRLF is one line break.
		if d.r.Buffered() > 0 {
			if next, err := d.r.Peek(1); err == nil && next[0] == '\n' {
				d.r.ReadByte()
			}
		}
		return Insert('\n'), nil
	case '\n':
		return Insert('\n'), nil
	case '\x7f':
		return Command{Kind: Backspace}, nil
	case '\b': // Ctrl+Backspace
		return Command{Kind: DeleteWordLeft}, nil
	case '\x17': // Ctrl+W
		return Command{Kind: DeleteWordLeft}, nil
	case '\x04': // Ctrl+D
		return Command{Kind: DuplicateLine}, nil
	case '\x13': // Ctrl+S
		return Command{Kind: Save}, nil
	case '\x11': // Ctrl+Q
		return Command{Kind: Quit}, nil
	}
	if r < 0x20 {
		return Command{Kind: Unknown}, nil
	}
	return Insert(r), nil
}

// escape parses what follows an ESC byte. A terminal writes a whole escape
// sequence at once, so if nothing is buffered the user pressed Escape.
func (d *Decoder) escape() (Command, error) {
	if d.r.Buffered() == 0 {
		return Command{Kind: Unknown}, nil
	}
	intro, err := d.r.ReadByte()
	if err != nil {
		return Command{Kind: Unknown}, nil
	}
	if intro == '\x7f' || intro == '\b' {
		// Alt+Backspace
		return Command{Kind: DeleteWordLeft}, nil
	}
	if intro != '[' && intro != 'O' {
		// Alt+key: drop the key.
		return Command{Kind: Unknown}, nil
	}

	paramBuf := make([]byte, 0, 8)
	for {
		if d.r.Buffered() == 0 {
			return Command{Kind: Unknown}, nil
		}
		b, err := d.r.ReadByte()
		if err != nil {
			return Command{Kind: Unknown}, nil
		}
		if b >= '0' && b <= '9' || b == ';' {
			paramBuf = append(paramBuf, b)
			continue
		}
		return csi(b, string(paramBuf)), nil
	}
}

func csi(cmd byte, params string) Command {
	isCtrl := strings.HasSuffix(params, ";5")
	isAlt := strings.HasSuffix(params, ";3")

	switch cmd {
	case 'A':
		if isAlt {
			return Command{Kind: MoveLineUp}
		}
		return Command{Kind: MoveUp}
	case 'B':
		if isAlt {
			return Command{Kind: MoveLineDown}
		}
		return Command{Kind: MoveDown}
	case 'C':
		if isCtrl {
			return Command{Kind: WordRight}
		}
		return Command{Kind: MoveRight}
	case 'D':
		if isCtrl {
			return Command{Kind: WordLeft}
		}
		return Command{Kind: MoveLeft}
	case 'H':
		if isCtrl {
			return Command{Kind: DocStart}
		}
		return Command{Kind: Home}
	case 'F':
		if isCtrl {
			return Command{Kind: DocEnd}
		}
		return Command{Kind: End}
	case '~':
		switch params {
		case "1", "7":
			return Command{Kind: Home}
		case "4", "8":
			return Command{Kind: End}
		case "3":
			return Command{Kind: Delete}
		case "3;5":
			return Command{Kind: DeleteWordRight}
		case "5":
			return Command{Kind: PageUp}
		case "6":
			return Command{Kind: PageDown}
		}
	}
	return Command{Kind: Unknown}
}
