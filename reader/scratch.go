package reader

import "slices"

// loadMode selects how a scan treats existing state: MOVE extends it from
// the given offset verbatim, REFRESH resolves the offset to an exact line
// start and rebuilds the index from scratch.
type loadMode int

const (
	modeMove loadMode = iota
	modeRefresh
)

const delimiter byte = '\n'

// line is one decoded window line together with the byte offsets bounding
// it: start is the offset of its first byte, next is the offset just past
// its delimiter (the start of the line that follows it).
type line struct {
	start int64
	next  int64
	text  string
}

// scratch is the working copy of the reader's state during one operation.
// Committed state is only replaced once the whole operation succeeds, so a
// failed scan leaves the previous window exactly as it was.
type scratch struct {
	starts *lineStarts
	window []line
}

func newScratch(r *Reader) *scratch {
	return &scratch{starts: r.starts.clone(), window: slices.Clone(r.window)}
}

func (s *scratch) clear() {
	s.starts.clear()
	s.window = s.window[:0]
}

// pushBack records a boundary at the back of the index, evicting from the
// front when the index is at capacity.
func (s *scratch) pushBack(offset int64) {
	evicted := s.starts.len() >= s.starts.capacity
	if evicted {
		s.starts.popFront()
	}
	s.starts.pushBack(offset)
	if evicted {
		s.prune()
	}
}

// pushFront records a boundary at the front of the index, evicting from the
// back when the index is at capacity.
func (s *scratch) pushFront(offset int64) {
	evicted := s.starts.len() >= s.starts.capacity
	if evicted {
		s.starts.popBack()
	}
	s.starts.pushFront(offset)
	if evicted {
		s.prune()
	}
}

// appendLine adds a line read by the forward scanner to the bottom of the
// window along with its trailing boundary.
func (s *scratch) appendLine(ln line) {
	s.window = append(s.window, ln)
	s.pushBack(ln.next)
}

// prependLine adds a line read by the backward scanner to the top of the
// window along with its leading boundary.
func (s *scratch) prependLine(ln line) {
	s.window = append([]line{ln}, s.window...)
	s.pushFront(ln.start)
}

// prune drops window lines that fell outside the boundaries still recorded
// in the index after an eviction.
func (s *scratch) prune() {
	first, last := s.starts.first(), s.starts.last()
	keep := s.window[:0]
	for _, ln := range s.window {
		if ln.start >= first && ln.next <= last {
			keep = append(keep, ln)
		}
	}
	s.window = keep
}
