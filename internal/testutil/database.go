package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/stt-search/internal/model"
	"github.com/Veraticus/stt-search/internal/storage"
)

// SnapshotTable is the table name used by SetupTestSnapshot.
const SnapshotTable = "stt"

// SetupTestSnapshot creates an in-memory SQLite snapshot holding table and
// returns it opened as a source. The database is closed on test cleanup.
//
// Example:
//
//	store := testutil.SetupTestSnapshot(t, testutil.NewRecordBuilder().
//		Route("Jakarta", "Surabaya", "Januari", "5").
//		Table())
func SetupTestSnapshot(t *testing.T, table *model.Table) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:", SnapshotTable)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		if closeErr := store.Close(); closeErr != nil {
			t.Logf("failed to close test database: %v", closeErr)
		}
	})

	if table != nil {
		if err := store.WriteSnapshot(context.Background(), table, nil); err != nil {
			t.Fatalf("failed to seed snapshot: %v", err)
		}
	}

	return store
}
