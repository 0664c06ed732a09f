package reader

import "slices"

// lineStarts is the bounded, ordered record of the byte offsets delimiting
// the lines currently held in the window. It holds one entry more than the
// number of lines it delimits: the first entry is the start offset of the
// window's first line, the last entry is the offset just past the window's
// last line (the start of the next, unloaded, line).
//
// The deque itself never evicts. The reader pairs every push beyond capacity
// with a pop from the opposite end.
type lineStarts struct {
	offsets  []int64
	capacity int
}

func newLineStarts(capacity int) *lineStarts {
	return &lineStarts{offsets: make([]int64, 0, capacity), capacity: capacity}
}

func (s *lineStarts) len() int { return len(s.offsets) }

// first returns the start offset of the window's first line, or 0 when
// nothing is loaded.
func (s *lineStarts) first() int64 {
	if len(s.offsets) == 0 {
		return 0
	}
	return s.offsets[0]
}

// last returns the offset just past the window's last line, or 0 when
// nothing is loaded.
func (s *lineStarts) last() int64 {
	if len(s.offsets) == 0 {
		return 0
	}
	return s.offsets[len(s.offsets)-1]
}

func (s *lineStarts) pushFront(offset int64) {
	s.offsets = append(s.offsets, 0)
	copy(s.offsets[1:], s.offsets)
	s.offsets[0] = offset
}

func (s *lineStarts) pushBack(offset int64) {
	s.offsets = append(s.offsets, offset)
}

func (s *lineStarts) popFront() {
	if len(s.offsets) > 0 {
		s.offsets = s.offsets[1:]
	}
}

func (s *lineStarts) popBack() {
	if len(s.offsets) > 0 {
		s.offsets = s.offsets[:len(s.offsets)-1]
	}
}

func (s *lineStarts) clear() {
	s.offsets = s.offsets[:0]
}

// compact removes adjacent duplicate offsets, restoring the strictly
// increasing order the committed index guarantees. A duplicate delimits no
// line, so dropping it loses nothing.
func (s *lineStarts) compact() {
	keep := s.offsets[:0]
	for i, off := range s.offsets {
		if i > 0 && off == keep[len(keep)-1] {
			continue
		}
		keep = append(keep, off)
	}
	s.offsets = keep
}

func (s *lineStarts) clone() *lineStarts {
	return &lineStarts{offsets: slices.Clone(s.offsets), capacity: s.capacity}
}
