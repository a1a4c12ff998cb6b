// Package storage provides the SQLite snapshot layer: a local table that
// can stand in for the spreadsheet as a record source.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Veraticus/stt-search/internal/common"
	"github.com/Veraticus/stt-search/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage reads and writes STT snapshots held in one SQLite table.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
	table  string
}

// NewSQLiteStorage opens the database at dbPath and binds it to table.
func NewSQLiteStorage(dbPath, table string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}
	if err := validateTableName(table); err != nil {
		return nil, err
	}

	// Ensure directory exists
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
		table:  table,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Table returns the table name the storage is bound to.
func (s *SQLiteStorage) Table() string {
	return s.table
}

// FetchAll implements service.Source.
func (s *SQLiteStorage) FetchAll(ctx context.Context) ([]model.Record, error) {
	table, err := s.FetchTable(ctx)
	if err != nil {
		return nil, err
	}
	return table.Records, nil
}

// FetchTable reads every row of the bound table in rowid order.
func (s *SQLiteStorage) FetchTable(ctx context.Context) (*model.Table, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT * FROM %s ORDER BY rowid", quoteIdent(s.table)) // #nosec G201 -- identifier is validated and quoted
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying %s: %v", common.ErrSourceUnavailable, s.table, err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: reading columns of %s: %v", common.ErrSourceUnavailable, s.table, err)
	}

	var records []model.Record
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: scanning %s: %v", common.ErrSourceUnavailable, s.table, err)
		}

		record := make(model.Record, len(columns))
		for i, col := range columns {
			record[col] = fromSQLValue(values[i])
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating %s: %v", common.ErrSourceUnavailable, s.table, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: table %s", common.ErrEmptyDataset, s.table)
	}

	return &model.Table{Columns: columns, Records: records}, nil
}

// fromSQLValue maps driver values onto the types the Sheets reader
// produces: strings, float64 and nil.
func fromSQLValue(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case int64:
		return float64(val)
	default:
		return val
	}
}
