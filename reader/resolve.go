package reader

// lineStartBefore resolves an arbitrary byte offset to the start of the line
// containing it: either offset 0, or the offset just past the nearest
// delimiter found walking backward one byte at a time from just before the
// input offset. An offset at or past the end of the file resolves to the
// file's current length, which stands for "no content at or after this
// point" when the file has shrunk since the offset was recorded.
//
// The walk costs one read per byte back to the previous delimiter, which is
// acceptable because it runs at most once per REFRESH operation.
func (r *Reader) lineStartBefore(src byteSource, off int64) (int64, error) {
	if off <= 0 {
		return 0, nil
	}

	size, err := src.Size()
	if err != nil {
		return 0, err
	}
	if off >= size {
		return size, nil
	}

	buf := make([]byte, 1)
	for i := off; i > 0; i-- {
		if _, err := src.ReadAt(buf, i-1); err != nil {
			return 0, err
		}
		if buf[0] == delimiter {
			return i, nil
		}
	}
	return 0, nil
}
