package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveOn(t *testing.T, contents string, off int64) int64 {
	t.Helper()

	r := &Reader{chunkSize: 4}
	got, err := r.lineStartBefore(newMemSource(contents), off)
	require.NoError(t, err)
	return got
}

func TestLineStartBefore_MidLine(t *testing.T) {
	// "hello\nworld": offsets 6..10 are all inside "world".
	for off := int64(7); off <= 10; off++ {
		assert.EqualValues(t, 6, resolveOn(t, "hello\nworld", off))
	}
}

func TestLineStartBefore_AtLineStart(t *testing.T) {
	assert.EqualValues(t, 6, resolveOn(t, "hello\nworld", 6))
}

func TestLineStartBefore_FirstLine(t *testing.T) {
	assert.EqualValues(t, 0, resolveOn(t, "hello\nworld", 3))
	assert.EqualValues(t, 0, resolveOn(t, "hello\nworld", 0))
}

func TestLineStartBefore_NoDelimiters(t *testing.T) {
	assert.EqualValues(t, 0, resolveOn(t, "hello", 4))
}

func TestLineStartBefore_AtOrPastEOF(t *testing.T) {
	// Offsets at or beyond the end resolve to the current length, standing
	// for "no content here yet" after a truncation.
	assert.EqualValues(t, 11, resolveOn(t, "hello\nworld", 11))
	assert.EqualValues(t, 11, resolveOn(t, "hello\nworld", 500))
	assert.EqualValues(t, 0, resolveOn(t, "", 0))
}

func TestLineStartBefore_DelimiterAtOffsetOne(t *testing.T) {
	assert.EqualValues(t, 2, resolveOn(t, "a\nbc", 3))
}
