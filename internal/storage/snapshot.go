package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/stt-search/internal/model"
)

// WriteSnapshot replaces the bound table with the contents of table in a
// single transaction. Columns are created untyped so numeric and text
// cells keep their SQLite storage class. onRow, when set, is called after
// each inserted row.
func (s *SQLiteStorage) WriteSnapshot(ctx context.Context, table *model.Table, onRow func()) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if table == nil {
		return fmt.Errorf("%w: table", ErrNilParameter)
	}

	columns := snapshotColumns(table.Columns)
	if len(columns) == 0 {
		return fmt.Errorf("%w: table columns", ErrEmptySlice)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ident := quoteIdent(s.table)
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+ident); err != nil {
		return fmt.Errorf("failed to drop %s: %w", s.table, err)
	}

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quoteIdent(col)
		placeholders[i] = "?"
	}

	create := fmt.Sprintf("CREATE TABLE %s (%s)", ident, strings.Join(quoted, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.table, err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", ident, strings.Join(quoted, ", "), strings.Join(placeholders, ", ")) // #nosec G201 -- identifiers are quoted
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	args := make([]any, len(columns))
	for rowIdx, record := range table.Records {
		for i, header := range table.Columns {
			args[i] = record[header]
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", rowIdx+1, err)
		}
		if onRow != nil {
			onRow()
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// snapshotColumns turns sheet headers into unique SQLite column names.
// Blank headers become column_N and repeats get a numeric suffix.
func snapshotColumns(headers []string) []string {
	seen := make(map[string]int, len(headers))
	out := make([]string, len(headers))
	for i, h := range headers {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		key := strings.ToLower(name)
		if n := seen[key]; n > 0 {
			name = fmt.Sprintf("%s_%d", name, n+1)
		}
		seen[key]++
		out[i] = name
	}
	return out
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
