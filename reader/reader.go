// Package reader provides memory-bounded, bidirectional windowed access to
// the lines of a large, possibly growing, text file. At most a fixed number
// of lines is resident at any time; the window can slide up, down, jump to
// the top or bottom of the file, and resynchronize against live file changes
// without ever materializing the whole file.
package reader

import "fmt"

// DefaultChunkSize is the number of bytes fetched per read when the
// configuration does not say otherwise. Smaller values increase the number
// of reads per operation, larger values increase peak per-call memory.
const DefaultChunkSize = 4096

// Config fixes a Reader's behavior for its lifetime.
type Config struct {
	// Path of the file to read. The file is opened read-only for the
	// duration of each operation and never held between calls.
	Path string

	// WindowSize is the maximum number of lines kept in memory. Must be
	// positive.
	WindowSize int

	// ChunkSize is the number of bytes per read call. Defaults to
	// DefaultChunkSize when zero.
	ChunkSize int
}

// Reader is a windowed line reader over one file.
//
// Every operation either fully replaces the window (Top, Tail, Refresh) or
// extends it by a computed delta (MoveUp, MoveDown), and returns the lines
// it read in file order. A non-nil error means the result is unavailable:
// the path did not resolve to a regular file, or a read failed mid-scan. In
// that case the window and its boundaries are left exactly as they were
// before the call.
//
// A Reader is not safe for concurrent use: calls mutate shared window state
// and must be serialized by the caller. The underlying file may be modified
// by other processes between calls; Refresh resynchronizes from a known
// anchor on a best-effort basis.
type Reader struct {
	path       string
	windowSize int
	chunkSize  int

	starts *lineStarts
	window []line
}

// New validates cfg and returns an empty Reader. No I/O happens until the
// first operation.
func New(cfg Config) (*Reader, error) {
	if cfg.WindowSize <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", cfg.WindowSize)
	}
	chunkSize := cfg.ChunkSize
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkSize < 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", cfg.ChunkSize)
	}

	return &Reader{
		path:       cfg.Path,
		windowSize: cfg.WindowSize,
		chunkSize:  chunkSize,
		// One extra boundary is needed to delimit the window's last line.
		starts: newLineStarts(cfg.WindowSize + 1),
	}, nil
}

// Path returns the configured file path.
func (r *Reader) Path() string { return r.path }

// WindowSize returns the configured maximum number of resident lines.
func (r *Reader) WindowSize() int { return r.windowSize }

// Window returns the lines currently held, in file order.
func (r *Reader) Window() []string {
	return texts(r.window)
}

// Top resets the window to the start of the file and returns up to a full
// window of lines.
func (r *Reader) Top() ([]string, error) {
	return r.operate(func(src byteSource, st *scratch) ([]line, error) {
		return r.loadFromTop(src, st, 0, r.windowSize, modeRefresh)
	})
}

// Tail resets the window to the end of the file and returns up to a full
// window of the file's last lines.
func (r *Reader) Tail() ([]string, error) {
	return r.operate(func(src byteSource, st *scratch) ([]line, error) {
		size, err := src.Size()
		if err != nil {
			return nil, err
		}
		return r.loadFromBottom(src, st, size, r.windowSize, modeRefresh)
	})
}

// MoveUp extends the window upward by up to n lines and returns them in
// file order, evicting the same number from the bottom once the window is
// full.
func (r *Reader) MoveUp(n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	return r.operate(func(src byteSource, st *scratch) ([]line, error) {
		return r.loadFromBottom(src, st, st.starts.first()-1, n, modeMove)
	})
}

// MoveDown extends the window downward by up to n lines and returns them,
// evicting from the top once the window is full.
func (r *Reader) MoveDown(n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	return r.operate(func(src byteSource, st *scratch) ([]line, error) {
		return r.loadFromTop(src, st, st.starts.last(), n, modeMove)
	})
}

// Refresh resynchronizes the window against the file's current contents,
// anchored at the window's first line, and returns the rebuilt window. If
// the anchor is too close to the end of the file to fill the window going
// forward, a supplementary backward scan backfills the shortfall, so the
// window holds a full WindowSize lines whenever the file has at least that
// many. If the file shrank past the anchor entirely, nothing the window
// held still exists and the window re-anchors to the end of the file as it
// is now, like Tail.
//
// The forward and backfill reads are two separate reads against a file that
// may still be mutating; the two halves of the resulting window are not
// guaranteed mutually consistent. That is inherent to reading a live file
// without locking or snapshotting.
func (r *Reader) Refresh() ([]string, error) {
	return r.operate(func(src byteSource, st *scratch) ([]line, error) {
		anchor := st.starts.first()
		lines, err := r.loadFromTop(src, st, anchor, r.windowSize, modeRefresh)
		if err != nil {
			return nil, err
		}

		if len(lines) == 0 {
			size, err := src.Size()
			if err != nil {
				return nil, err
			}
			if anchor >= size {
				// The forward scan bailed out before touching the scratch,
				// which still holds the pre-truncation window. Drop it and
				// rebuild from the new end of the file.
				st.clear()
				return r.loadFromBottom(src, st, size, r.windowSize, modeRefresh)
			}
		}

		if shortfall := r.windowSize - len(lines); shortfall > 0 {
			extra, err := r.loadFromBottom(src, st, st.starts.first()-1, shortfall, modeMove)
			if err != nil {
				return nil, err
			}
			lines = append(extra, lines...)
		}

		return lines, nil
	})
}

// operate runs one scan against a scratch copy of the reader's state and
// commits the copy only if the whole scan succeeds.
func (r *Reader) operate(fn func(byteSource, *scratch) ([]line, error)) ([]string, error) {
	src, release, err := openSource(r.path)
	if err != nil {
		return nil, err
	}
	defer release()

	st := newScratch(r)
	lines, err := fn(src, st)
	if err != nil {
		return nil, err
	}

	// A forward move re-pushes its continuation offset, which can leave a
	// duplicated boundary in the index. The duplicate preserves the
	// one-eviction-per-push cadence during the scan but delimits no line,
	// so the committed index must not carry it: after the commit the index
	// is strictly increasing and holds exactly one more entry than the
	// window holds lines.
	st.starts.compact()

	r.starts = st.starts
	r.window = st.window
	return texts(lines), nil
}

func texts(lines []line) []string {
	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = ln.text
	}
	return out
}
