package reader

import (
	"errors"
	"io"
)

// loadFromTop reads up to want lines forward from the given offset, splitting
// on delimiter bytes as fixed-size chunks are read. A line may span any
// number of chunk boundaries: bytes read past the last complete line are
// carried over as the prefix of the line completed in a later chunk.
//
// In REFRESH mode the offset is first resolved to the exact start of the
// line containing it and the index is rebuilt; in MOVE mode the offset is
// used verbatim as the continuation point and the index is extended.
//
// An offset at or past the file's last byte reads as empty, so a final line
// consisting of a single undelimited byte is invisible to the forward scan:
// Top on a one-byte file returns nothing, while Tail returns the line. The
// backward scanner has no such guard.
func (r *Reader) loadFromTop(src byteSource, st *scratch, from int64, want int, mode loadMode) ([]line, error) {
	size, err := src.Size()
	if err != nil {
		return nil, err
	}

	// Nothing at or beyond this offset. An empty result, not a failure.
	if from >= size-1 {
		return nil, nil
	}

	if mode == modeRefresh {
		from, err = r.lineStartBefore(src, from)
		if err != nil {
			return nil, err
		}
		st.clear()
	}

	st.pushBack(from)

	var (
		result []line
		carry  []byte
		buf    = make([]byte, r.chunkSize)
		pos    = from
		lineAt = from // absolute start of the line currently being assembled
	)

scan:
	for {
		// Re-query the length so a line appended mid-scan still terminates
		// on the file's true final byte.
		size, err = src.Size()
		if err != nil {
			return nil, err
		}

		n, rerr := src.ReadAt(buf, pos)
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return nil, rerr
		}
		if n == 0 {
			break
		}

		lineLocal := 0 // start of the current line within buf, once it begins in this chunk
		for i := 0; i < n; i++ {
			isDelim := buf[i] == delimiter
			if !isDelim && pos+int64(i) != size-1 {
				continue
			}

			contentEnd := i
			if !isDelim {
				// The file's final byte is not a delimiter; it belongs to
				// the line.
				contentEnd = i + 1
			}

			ln := line{
				start: lineAt,
				next:  pos + int64(i) + 1,
				text:  string(carry) + string(buf[lineLocal:contentEnd]),
			}
			carry = nil
			result = append(result, ln)
			st.appendLine(ln)

			if len(result) >= want {
				break scan
			}

			lineLocal = i + 1
			lineAt = ln.next
		}

		if lineLocal < n {
			carry = append(carry, buf[lineLocal:n]...)
		}
		pos += int64(n)

		if errors.Is(rerr, io.EOF) {
			break
		}
	}

	return result, nil
}
