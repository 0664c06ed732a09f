package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapLine_ShortLineFitsInOneRow(t *testing.T) {
	assert.Equal(t, []string{"hello"}, WrapLine("hello", 10))
	assert.Equal(t, []string{"hello"}, WrapLine("hello", 5))
}

func TestWrapLine_SplitsAtWidth(t *testing.T) {
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, WrapLine("abcdefghij", 4))
}

func TestWrapLine_ExactMultiple(t *testing.T) {
	assert.Equal(t, []string{"ab", "cd"}, WrapLine("abcd", 2))
}

func TestWrapLine_EmptyLineKeepsARow(t *testing.T) {
	assert.Equal(t, []string{""}, WrapLine("", 10))
}

func TestWrapLine_ZeroWidth(t *testing.T) {
	assert.Nil(t, WrapLine("abc", 0))
}

func TestWrapLine_WidthOne(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, WrapLine("abc", 1))
}

func TestWrapLine_WideRunesCountTwoCells(t *testing.T) {
	// Each CJK rune is two cells wide, so only two fit per 4-cell row.
	assert.Equal(t, []string{"日本", "語だ"}, WrapLine("日本語だ", 4))
}

func TestWrapLine_WideRuneDoesNotStraddleRows(t *testing.T) {
	// "a" leaves one cell, not enough for a two-cell rune.
	assert.Equal(t, []string{"a", "日"}, WrapLine("a日", 2))
}

func TestWrapLine_CombiningMarkStaysWithBase(t *testing.T) {
	// "e" plus a combining acute accent forms one cluster of width 1.
	text := "aéb"
	assert.Equal(t, []string{"a", "é", "b"}, WrapLine(text, 1))
}

func TestWrapLine_LongLine(t *testing.T) {
	text := strings.Repeat("x", 250)
	rows := WrapLine(text, 80)
	assert.Equal(t, []string{
		strings.Repeat("x", 80),
		strings.Repeat("x", 80),
		strings.Repeat("x", 80),
		strings.Repeat("x", 10),
	}, rows)
}

func TestWrapLine_OversizedClusterGetsItsOwnRow(t *testing.T) {
	// A two-cell rune cannot fit a one-cell row; it still has to land
	// somewhere rather than loop forever.
	assert.Equal(t, []string{"日", "本"}, WrapLine("日本", 1))
}
