package testutil

import (
	"github.com/Veraticus/stt-search/internal/model"
)

// RecordBuilder assembles STT records using the default column names.
//
// Example:
//
//	records := testutil.NewRecordBuilder().
//		Route("Jakarta", "Surabaya", "Januari", "5").
//		Route("Jakarta", "Surabaya", "Maret", "3").
//		Build()
type RecordBuilder struct {
	records []model.Record
	columns model.Columns
}

// NewRecordBuilder creates an empty builder.
func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{columns: model.DefaultColumns()}
}

// Route appends a record for one origin/destination/month cell group.
func (b *RecordBuilder) Route(origin, destination, month string, count any) *RecordBuilder {
	b.records = append(b.records, model.Record{
		b.columns.Origin:      origin,
		b.columns.Destination: destination,
		b.columns.Month:       month,
		b.columns.Count:       count,
	})
	return b
}

// Raw appends a record as-is, for rows with missing or odd cells.
func (b *RecordBuilder) Raw(r model.Record) *RecordBuilder {
	b.records = append(b.records, r)
	return b
}

// Build returns the accumulated records.
func (b *RecordBuilder) Build() []model.Record {
	out := make([]model.Record, len(b.records))
	copy(out, b.records)
	return out
}

// Table returns the records with the default header order.
func (b *RecordBuilder) Table() *model.Table {
	return &model.Table{
		Columns: []string{b.columns.Origin, b.columns.Destination, b.columns.Month, b.columns.Count},
		Records: b.Build(),
	}
}

// ScenarioRecords is the two-row Jakarta -> Surabaya data set used across
// package tests.
func ScenarioRecords() []model.Record {
	return NewRecordBuilder().
		Route("Jakarta", "Surabaya", "Januari", "5").
		Route("Jakarta", "Surabaya", "Maret", "3").
		Build()
}
