package reader

import (
	"errors"
	"io"
)

// loadFromBottom reads up to want lines that end strictly before the given
// offset, walking backward in fixed-size chunks and splitting each chunk in
// reverse. Bytes of the chunk not yet consumed into a complete line are the
// tail of a line whose start lives further back; they are carried over and
// appended when that line's delimiter is eventually found.
//
// In REFRESH mode the offset is resolved to an exact line start, the index
// is rebuilt and the resolved offset seeds it as the new last boundary. In
// MOVE mode the offset is used verbatim and found lines are prepended to the
// existing state.
func (r *Reader) loadFromBottom(src byteSource, st *scratch, end int64, want int, mode loadMode) ([]line, error) {
	// Already at the start of the file. An empty result, not a failure.
	if end <= 0 {
		return nil, nil
	}

	size, err := src.Size()
	if err != nil {
		return nil, err
	}

	pos := end     // exclusive upper bound of the bytes still to scan
	nb := end + 1  // boundary just past the next line to be completed
	if mode == modeRefresh {
		pos, err = r.lineStartBefore(src, end)
		if err != nil {
			return nil, err
		}
		nb = pos
		if pos == size && size > 0 {
			// A file ending in a delimiter has no content after it. Skip
			// the terminal delimiter so the scan yields the last real line
			// instead of a phantom empty one.
			b := make([]byte, 1)
			if _, err := src.ReadAt(b, size-1); err != nil {
				return nil, err
			}
			if b[0] == delimiter {
				pos = size - 1
			}
		}
		st.clear()
		st.pushBack(nb)
	}
	if pos > size {
		// The recorded offsets outlived a truncation; fall back to the end
		// of the file as it is now.
		pos, nb = size, size
	}

	var (
		result []line
		carry  []byte
		buf    = make([]byte, r.chunkSize)
	)

scan:
	for pos > 0 {
		chunkStart := pos - int64(r.chunkSize)
		if chunkStart < 0 {
			chunkStart = 0
		}

		// Read exactly [chunkStart, pos): never past bytes already
		// represented by lines found so far.
		chunk := buf[:pos-chunkStart]
		n, rerr := src.ReadAt(chunk, chunkStart)
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return nil, rerr
		}
		if int64(n) < pos-chunkStart {
			// Only possible if the file shrank under us mid-scan.
			return nil, io.ErrUnexpectedEOF
		}

		localEnd := n
		for i := n - 1; i >= 0; i-- {
			if chunk[i] != delimiter {
				continue
			}

			ln := line{
				start: chunkStart + int64(i) + 1,
				next:  nb,
				text:  string(chunk[i+1:localEnd]) + string(carry),
			}
			carry = nil
			result = append([]line{ln}, result...)
			st.prependLine(ln)
			nb = ln.start
			localEnd = i

			if len(result) >= want {
				break scan
			}
		}

		if chunkStart == 0 {
			// File offset 0 reached: whatever is left is the first line.
			ln := line{start: 0, next: nb, text: string(chunk[:localEnd]) + string(carry)}
			result = append([]line{ln}, result...)
			st.prependLine(ln)
			break
		}

		next := make([]byte, localEnd+len(carry))
		copy(next, chunk[:localEnd])
		copy(next[localEnd:], carry)
		carry = next
		pos = chunkStart
	}

	return result, nil
}
