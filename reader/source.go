package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotRegularFile is returned by every operation when the configured path
// does not resolve to a readable regular file at the time the operation runs.
var ErrNotRegularFile = errors.New("not a regular file")

// A byteSource is a positioned view of a file's bytes. It is the only thing
// the scanners read from, so tests can run them against an in-memory buffer.
type byteSource interface {
	io.ReaderAt

	// Size returns the source's current length in bytes. Scans re-query it
	// between chunk reads because the underlying file may be growing.
	Size() (int64, error)
}

type fileSource struct {
	f *os.File
}

func (s fileSource) ReadAt(p []byte, off int64) (int, error) {
	return s.f.ReadAt(p, off)
}

func (s fileSource) Size() (int64, error) {
	info, err := s.f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// openSource acquires the file for the duration of a single operation. The
// regular-file check happens before any read so a bad path fails fast.
func openSource(path string) (byteSource, func() error, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	return fileSource{f: f}, f.Close, nil
}
