package testutil

import (
	"testing"

	"github.com/dgraph-io/badger/v3"
)

// NewBadgerDB opens an in-memory Badger database that is closed when the test
// finishes. It never skips, so store tests always have at least one backend.
func NewBadgerDB(t *testing.T) *badger.DB {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatalf("testutil.NewBadgerDB: open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
