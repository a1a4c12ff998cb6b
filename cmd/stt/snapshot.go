package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/stt-search/internal/cli"
	"github.com/Veraticus/stt-search/internal/config"
	"github.com/Veraticus/stt-search/internal/service"
	"github.com/Veraticus/stt-search/internal/storage"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Copy the worksheet into a local SQLite snapshot",
		Long: `Fetch the whole worksheet from Google Sheets and store it in a SQLite
table. Run the server or queries against it with:

  source:
    driver: sqlite

The previous snapshot table is replaced.`,
		RunE: runSnapshot,
	}

	cmd.Flags().String("out", "", "snapshot database path (default: sqlite.path)")
	cmd.Flags().String("table", "", "table name (default: sqlite.table)")

	return cmd
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := slog.Default()

	target := config.LoadSQLiteConfig()
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		target.Path = config.ExpandPath(out)
	}
	if table, _ := cmd.Flags().GetString("table"); table != "" {
		target.Table = table
	}

	reader, err := initSheetsReader(ctx, logger)
	if err != nil {
		return err
	}

	store, err := storage.NewSQLiteStorage(target.Path, target.Table)
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("failed to close storage", "error", closeErr)
		}
	}()

	rows, err := copySnapshot(ctx, reader, store, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Saved %d rows to %s (table %s)", rows, target.Path, target.Table))) //nolint:forbidigo // User-facing output
	return nil
}

// copySnapshot fetches the full table from src and writes it to dst,
// drawing a progress bar on progress.
func copySnapshot(ctx context.Context, src service.TableSource, dst service.SnapshotWriter, progress io.Writer) (int, error) {
	table, err := src.FetchTable(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch table: %w", err)
	}

	bar := progressbar.NewOptions(len(table.Records),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Writing snapshot"),
		progressbar.OptionClearOnFinish(),
	)

	if err := dst.WriteSnapshot(ctx, table, func() { _ = bar.Add(1) }); err != nil {
		return 0, fmt.Errorf("failed to write snapshot: %w", err)
	}
	_ = bar.Finish()

	return len(table.Records), nil
}
