// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/stt-search/internal/model"
)

// Source is the contract for the tabular data source behind the search.
// FetchAll returns every record of the table. Implementations wrap
// common.ErrSourceUnavailable when the fetch or authentication fails and
// return common.ErrEmptyDataset when the fetch succeeds with no records.
// No retries are attempted.
type Source interface {
	FetchAll(ctx context.Context) ([]model.Record, error)
}

// TableSource is a Source that can also report the header order, which
// snapshots need to recreate the table faithfully.
type TableSource interface {
	Source
	FetchTable(ctx context.Context) (*model.Table, error)
}

// SnapshotWriter persists a fetched table for offline use.
type SnapshotWriter interface {
	WriteSnapshot(ctx context.Context, table *model.Table, onRow func()) error
}
