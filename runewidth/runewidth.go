package runewidth

import (
	"unicode"
	"unicode/utf8"

	gorunewidth "github.com/mattn/go-runewidth"
)

// Table maps runes to the number of terminal cells they occupy.
type Table struct {
	cond *gorunewidth.Condition
}

// Default treats East Asian ambiguous characters as narrow.
var Default = New(false)

// New builds a Table. When ambiguousWide is set, East Asian ambiguous
// characters (Greek, Cyrillic, box drawing, ...) count as two cells, the
// way CJK locales render them.
func New(ambiguousWide bool) *Table {
	cond := gorunewidth.NewCondition()
	cond.EastAsianWidth = ambiguousWide
	return &Table{cond: cond}
}

// RuneWidth returns 0, 1 or 2.
func (t *Table) RuneWidth(r rune) int {
	if !utf8.ValidRune(r) || unicode.IsControl(r) {
		return 0
	}
	w := t.cond.RuneWidth(r)
	if w > 2 {
		return 2
	}
	if w < 0 {
		return 0
	}
	return w
}

func (t *Table) StringWidth(s string) int {
	width := 0
	for _, r := range s {
		width += t.RuneWidth(r)
	}
	return width
}

func RuneWidth(r rune) int {
	return Default.RuneWidth(r)
}

func StringWidth(s string) int {
	return Default.StringWidth(s)
}
