package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineStarts_EmptyDefaults(t *testing.T) {
	s := newLineStarts(3)

	assert.EqualValues(t, 0, s.len())
	assert.EqualValues(t, 0, s.first())
	assert.EqualValues(t, 0, s.last())
}

func TestLineStarts_PushBack(t *testing.T) {
	s := newLineStarts(3)
	s.pushBack(0)
	s.pushBack(5)
	s.pushBack(9)

	assert.EqualValues(t, 3, s.len())
	assert.EqualValues(t, 0, s.first())
	assert.EqualValues(t, 9, s.last())
}

func TestLineStarts_PushFront(t *testing.T) {
	s := newLineStarts(3)
	s.pushBack(9)
	s.pushFront(5)
	s.pushFront(0)

	assert.EqualValues(t, []int64{0, 5, 9}, s.offsets)
}

func TestLineStarts_PopBothEnds(t *testing.T) {
	s := newLineStarts(4)
	for _, off := range []int64{1, 2, 3, 4} {
		s.pushBack(off)
	}

	s.popFront()
	s.popBack()

	assert.EqualValues(t, []int64{2, 3}, s.offsets)
	assert.EqualValues(t, 2, s.first())
	assert.EqualValues(t, 3, s.last())
}

func TestLineStarts_Clear(t *testing.T) {
	s := newLineStarts(3)
	s.pushBack(1)
	s.pushBack(2)
	s.clear()

	assert.EqualValues(t, 0, s.len())
	assert.EqualValues(t, 0, s.first())
}

func TestLineStarts_CloneIsIndependent(t *testing.T) {
	s := newLineStarts(3)
	s.pushBack(1)
	s.pushBack(2)

	c := s.clone()
	c.pushBack(3)
	c.popFront()

	assert.EqualValues(t, []int64{1, 2}, s.offsets)
	assert.EqualValues(t, []int64{2, 3}, c.offsets)
	assert.EqualValues(t, s.capacity, c.capacity)
}

func TestLineStarts_CompactDropsAdjacentDuplicates(t *testing.T) {
	s := newLineStarts(5)
	s.pushBack(4)
	s.pushBack(4)
	s.pushBack(6)

	s.compact()
	assert.EqualValues(t, []int64{4, 6}, s.offsets)
}

func TestLineStarts_CompactKeepsDistinctOffsets(t *testing.T) {
	s := newLineStarts(5)
	s.pushBack(0)
	s.pushBack(2)
	s.pushBack(4)

	s.compact()
	assert.EqualValues(t, []int64{0, 2, 4}, s.offsets)

	s.clear()
	s.compact()
	assert.EqualValues(t, 0, s.len())
}
