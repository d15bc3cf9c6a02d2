package store

import (
	"context"
	"path/filepath"
	"testing"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// mustAppend appends a payload and fails the test on error.
func mustAppend(t *testing.T, s *Store, dataset, payload string) int64 {
	t.Helper()
	id, err := s.Append(context.Background(), dataset, []byte(payload))
	if err != nil {
		t.Fatalf("Append(%q) failed: %v", dataset, err)
	}
	return id
}
