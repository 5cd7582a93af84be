package testsupport

import (
	"path/filepath"
	"testing"

	"affixsplit/internal/snapshot"
)

// MustOpenSnapshot opens a snapshot.Store in a temp directory and registers cleanup.
func MustOpenSnapshot(t testing.TB) *snapshot.Store {
	t.Helper()

	store, err := snapshot.Open(filepath.Join(t.TempDir(), "affix_snapshot.db"))
	if err != nil {
		t.Fatalf("snapshot.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
