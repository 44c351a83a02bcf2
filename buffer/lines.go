package buffer

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/bulga138/cellpad/runewidth"
)

// line is one row of the document together with its width cache.
// starts has len(chars)+1 entries; the last one is the line width.
type line struct {
	chars  []rune
	starts []int
}

// LineBuffer is an ordered sequence of lines. It never holds fewer than
// one line and no line ever contains '\n'.
type LineBuffer struct {
	lines []*line
	width *runewidth.Table
}

var _ Buffer = (*LineBuffer)(nil)

// Load splits content on line feeds and builds the width cache of every
// line. Trailing carriage returns are dropped from each line. A final
// line feed terminates the last line rather than opening a new one.
// A nil table selects runewidth.Default.
func Load(content string, table *runewidth.Table) *LineBuffer {
	if table == nil {
		table = runewidth.Default
	}
	b := &LineBuffer{width: table}

	content = strings.TrimSuffix(content, "\n")
	for _, s := range strings.Split(content, "\n") {
		l := &line{chars: []rune(strings.TrimRight(s, "\r"))}
		b.lines = append(b.lines, l)
		b.recompute(l)
	}
	return b
}

// --- Read accessors ---

func (b *LineBuffer) LineCount() int {
	return len(b.lines)
}

func (b *LineBuffer) LineLength(row int) int {
	return len(b.lines[row].chars)
}

func (b *LineBuffer) CharAt(row, col int) rune {
	return b.lines[row].chars[col]
}

// Line returns a copy of the line's text.
func (b *LineBuffer) Line(row int) string {
	return string(b.lines[row].chars)
}

func (b *LineBuffer) Start(row, i int) int {
	return b.lines[row].starts[i]
}

// LineWidth returns the total display width of a line.
func (b *LineBuffer) LineWidth(row int) int {
	l := b.lines[row]
	return l.starts[len(l.chars)]
}

func (b *LineBuffer) DisplayColumn(row, col int) int {
	l := b.lines[row]
	if col < 0 {
		return 0
	}
	if col > len(l.chars) {
		col = len(l.chars)
	}
	return l.starts[col]
}

func (b *LineBuffer) CharIndexAt(row, displayCol int) int {
	l := b.lines[row]
	n := len(l.chars)
	if displayCol < 0 {
		return 0
	}
	// starts is non-decreasing, so the first i whose cell range ends past
	// displayCol is the smallest one covering it. Zero-width characters
	// cover nothing and are skipped.
	return sort.Search(n, func(i int) bool {
		return l.starts[i+1] > displayCol
	})
}

// --- Mutation ---

// RecomputeWidths rebuilds the width cache of one line.
func (b *LineBuffer) RecomputeWidths(row int) {
	b.recompute(b.lines[row])
}

func (b *LineBuffer) recompute(l *line) {
	if cap(l.starts) < len(l.chars)+1 {
		l.starts = make([]int, len(l.chars)+1)
	} else {
		l.starts = l.starts[:len(l.chars)+1]
	}
	col := 0
	for i, r := range l.chars {
		l.starts[i] = col
		col += b.width.RuneWidth(r)
	}
	l.starts[len(l.chars)] = col
}

// InsertRune inserts r before the character at col. r must not be '\n';
// use SplitLine for that.
func (b *LineBuffer) InsertRune(row, col int, r rune) {
	l := b.lines[row]
	l.chars = append(l.chars, 0)
	copy(l.chars[col+1:], l.chars[col:])
	l.chars[col] = r
	b.recompute(l)
}

// DeleteRune removes the character at col.
func (b *LineBuffer) DeleteRune(row, col int) {
	l := b.lines[row]
	l.chars = append(l.chars[:col], l.chars[col+1:]...)
	b.recompute(l)
}

// SplitLine breaks a line at col. The characters from col onwards move to
// a new line inserted directly after row.
func (b *LineBuffer) SplitLine(row, col int) {
	l := b.lines[row]
	tail := &line{chars: append([]rune(nil), l.chars[col:]...)}
	l.chars = l.chars[:col:col]
	b.recompute(l)
	b.recompute(tail)

	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = tail
}

// JoinNext appends the line after row onto row and removes it.
// It does nothing on the last line.
func (b *LineBuffer) JoinNext(row int) {
	if row+1 >= len(b.lines) {
		return
	}
	l := b.lines[row]
	l.chars = append(l.chars, b.lines[row+1].chars...)
	b.recompute(l)

	copy(b.lines[row+1:], b.lines[row+2:])
	b.lines[len(b.lines)-1] = nil
	b.lines = b.lines[:len(b.lines)-1]
}

// DeleteRange removes the characters in [from, to) of a line.
func (b *LineBuffer) DeleteRange(row, from, to int) {
	if from >= to {
		return
	}
	l := b.lines[row]
	l.chars = append(l.chars[:from], l.chars[to:]...)
	b.recompute(l)
}

// DuplicateLine inserts a copy of row directly below it.
func (b *LineBuffer) DuplicateLine(row int) {
	src := b.lines[row]
	dup := &line{
		chars:  append([]rune(nil), src.chars...),
		starts: append([]int(nil), src.starts...),
	}
	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = dup
}

// SwapLines exchanges two lines. Width caches travel with their lines.
func (b *LineBuffer) SwapLines(i, j int) {
	b.lines[i], b.lines[j] = b.lines[j], b.lines[i]
}

// --- Serialization ---

// Serialize joins the lines with '\n' and terminates the last one.
// Content is written back exactly as held; nothing is trimmed.
func (b *LineBuffer) Serialize() string {
	var sb strings.Builder
	_, _ = b.WriteTo(&sb) // strings.Builder never returns an error
	return sb.String()
}

func (b *LineBuffer) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, l := range b.lines {
		for _, r := range l.chars {
			m, _ := bw.WriteRune(r)
			n += int64(m)
		}
		bw.WriteByte('\n')
		n++
	}
	if err := bw.Flush(); err != nil {
		return n, err
	}
	return n, nil
}
