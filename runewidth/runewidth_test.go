package runewidth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want int
	}{
		{"ascii letter", 'a', 1},
		{"space", ' ', 1},
		{"tab", '\t', 0},
		{"newline", '\n', 0},
		{"escape", '\x1b', 0},
		{"delete", '\x7f', 0},
		{"c1 control", '\u0085', 0},
		{"combining acute", '\u0301', 0},
		{"zero width space", '\u200b', 0},
		{"zero width joiner", '\u200d', 0},
		{"hiragana", 'こ', 2},
		{"han", '世', 2},
		{"hangul syllable", '한', 2},
		{"fullwidth latin", 'Ａ', 2},
		{"halfwidth katakana", 'ｱ', 1},
		{"emoji", '😀', 2},
		{"invalid", rune(0x110000), 0},
		{"surrogate", rune(0xD800), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RuneWidth(tt.r), "RuneWidth(%U)", tt.r)
		})
	}
}

func TestAmbiguousWidth(t *testing.T) {
	narrow := New(false)
	wide := New(true)

	assert.Equal(t, 1, narrow.RuneWidth('α'))
	assert.Equal(t, 2, wide.RuneWidth('α'))

	// Unambiguous characters are unaffected by the setting.
	assert.Equal(t, 1, wide.RuneWidth('a'))
	assert.Equal(t, 2, wide.RuneWidth('世'))
	assert.Equal(t, 0, wide.RuneWidth('\t'))
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"a😀b", 4},
		{"hello 世界", 10},
		{"é", 1},
		{"a\tb", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StringWidth(tt.in), "StringWidth(%q)", tt.in)
	}
}
