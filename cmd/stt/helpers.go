package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/stt-search/internal/config"
	"github.com/Veraticus/stt-search/internal/search"
	"github.com/Veraticus/stt-search/internal/service"
	"github.com/Veraticus/stt-search/internal/sheets"
	"github.com/Veraticus/stt-search/internal/storage"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// initSource builds the configured data source once. The returned close
// function releases it and is never nil.
func initSource(ctx context.Context, logger *slog.Logger) (service.TableSource, func(), error) {
	driver, err := config.SourceDriver()
	if err != nil {
		return nil, nil, err
	}

	switch driver {
	case config.DriverSQLite:
		cfg := config.LoadSQLiteConfig()
		store, err := storage.NewSQLiteStorage(cfg.Path, cfg.Table)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open snapshot: %w", err)
		}
		logger.Info("using SQLite snapshot", "path", cfg.Path, "table", cfg.Table)
		return store, func() {
			if closeErr := store.Close(); closeErr != nil {
				logger.Error("failed to close storage", "error", closeErr)
			}
		}, nil

	default:
		reader, err := initSheetsReader(ctx, logger)
		if err != nil {
			return nil, nil, err
		}
		return reader, func() {}, nil
	}
}

func initSheetsReader(ctx context.Context, logger *slog.Logger) (*sheets.Reader, error) {
	cfg, err := config.LoadSheetsConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load sheets config: %w", err)
	}

	srv, err := sheets.NewService(ctx, *cfg)
	if err != nil {
		return nil, err
	}

	logger.Info("using Google Sheets",
		"spreadsheet_id", cfg.SpreadsheetID,
		"worksheet", cfg.Worksheet,
		"auth", cfg.AuthMethod())
	return sheets.NewReader(srv, *cfg, logger)
}

// initSearcher wires the configured source into a Searcher.
func initSearcher(ctx context.Context, logger *slog.Logger) (*search.Searcher, func(), error) {
	cols, err := config.LoadColumns()
	if err != nil {
		return nil, nil, err
	}

	source, closeSource, err := initSource(ctx, logger)
	if err != nil {
		return nil, nil, err
	}

	searcher, err := search.NewSearcher(source, cols, logger)
	if err != nil {
		closeSource()
		return nil, nil, err
	}
	return searcher, closeSource, nil
}
