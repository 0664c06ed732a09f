package reader

import (
	"bytes"
	"os"
	"path"
	"testing"
)

// createTestFile creates a temporary file with the given contents and
// returns its path.
func createTestFile(t *testing.T, contents string) string {
	t.Helper()

	filepath := path.Join(t.TempDir(), "test.txt")
	if err := os.WriteFile(filepath, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	return filepath
}

func appendToTestFile(t *testing.T, filepath, contents string) {
	t.Helper()

	f, err := os.OpenFile(filepath, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		t.Fatalf("Failed to open temp file for appending: %v", err)
	}
	if _, err := f.WriteString(contents); err != nil {
		t.Fatalf("Failed to append to temp file: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}
}

func rewriteTestFile(t *testing.T, filepath, contents string) {
	t.Helper()

	if err := os.WriteFile(filepath, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to rewrite temp file: %v", err)
	}
}

// memSource is an in-memory byte source for exercising the scanners without
// any file I/O.
type memSource struct {
	*bytes.Reader
}

func newMemSource(contents string) memSource {
	return memSource{bytes.NewReader([]byte(contents))}
}

func (m memSource) Size() (int64, error) {
	return m.Reader.Size(), nil
}

// newTestReader builds a reader with a small chunk size so chunk boundary
// handling gets exercised even by short fixtures.
func newTestReader(t *testing.T, filepath string, windowSize, chunkSize int) *Reader {
	t.Helper()

	r, err := New(Config{Path: filepath, WindowSize: windowSize, ChunkSize: chunkSize})
	if err != nil {
		t.Fatalf("Failed to create reader: %v", err)
	}
	return r
}
