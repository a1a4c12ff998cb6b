package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/stt-search/internal/cli"
	"github.com/Veraticus/stt-search/internal/common"
	"github.com/Veraticus/stt-search/internal/search"
	"github.com/spf13/cobra"
)

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Look up per-month STT totals for one route",
		Long: `Run a single search against the configured data source and print
the result, without starting the HTTP server.

Example:
  stt query --asal jakarta --tujuan surabaya
  stt query --asal jakrta --tujuan surabaya --json`,
		RunE: runQuery,
	}

	cmd.Flags().String("asal", "", "origin city (Kota Asal)")
	cmd.Flags().String("tujuan", "", "destination city (Kota Tujuan)")
	cmd.Flags().Bool("json", false, "print the API response body instead of a table")

	return cmd
}

func runQuery(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := slog.Default()

	origin, _ := cmd.Flags().GetString("asal")
	destination, _ := cmd.Flags().GetString("tujuan")
	asJSON, _ := cmd.Flags().GetBool("json")

	searcher, closeSource, err := initSearcher(ctx, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize search: %w", err)
	}
	defer closeSource()

	resp, err := searcher.Search(ctx, origin, destination)
	if err != nil {
		return queryError(err)
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), resp)
	}
	return renderResult(cmd.OutOrStdout(), resp)
}

// queryError attaches a user-facing message to search failures.
func queryError(err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return common.NewUserError("both --asal and --tujuan are required", err)
	case errors.Is(err, common.ErrEmptyDataset):
		return common.NewUserError("the data source has no records", err)
	case errors.Is(err, common.ErrSourceUnavailable):
		return common.NewUserError("failed to read the data source", err)
	case common.IsNotFound(err):
		return common.NewUserError("no shipments found for this route", err)
	default:
		return common.NewUserError("search failed", err)
	}
}

func writeJSON(w io.Writer, resp *search.Response) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func renderResult(w io.Writer, resp *search.Response) error {
	if _, err := fmt.Fprintln(w, cli.FormatTitle(fmt.Sprintf("%s → %s", resp.Origin, resp.Destination))); err != nil {
		return err
	}

	table := cli.NewTable(w, "Bulan", "Jumlah STT")
	if err := table.WriteHeader(); err != nil {
		return err
	}
	for _, mt := range resp.PerMonth {
		if err := table.WriteRow(mt.Month, mt.Total); err != nil {
			return err
		}
	}
	if err := table.Flush(); err != nil {
		return fmt.Errorf("failed to flush table writer: %w", err)
	}

	_, err := fmt.Fprintf(w, "\n%s %s\n",
		cli.BoldStyle.Render(fmt.Sprintf("Total: %d STT", resp.Total)),
		cli.SubtleStyle.Render(fmt.Sprintf("(%d bulan)", resp.MonthsFound)))
	return err
}
