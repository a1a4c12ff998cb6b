package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/stt-search/internal/common"
	"github.com/Veraticus/stt-search/internal/model"
	"github.com/spf13/cast"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"
)

// Reader fetches the whole STT worksheet on every call. It holds no
// cached data; the injected service is safe for concurrent use.
type Reader struct {
	service       *sheets.Service
	logger        *slog.Logger
	spreadsheetID string
	worksheet     string
	timeout       time.Duration
}

// NewReader creates a reader for the worksheet named in config.
func NewReader(service *sheets.Service, config Config, logger *slog.Logger) (*Reader, error) {
	if service == nil {
		return nil, fmt.Errorf("%w: sheets service is required", common.ErrMissingConfig)
	}
	if strings.TrimSpace(config.SpreadsheetID) == "" {
		return nil, fmt.Errorf("%w: spreadsheet id is required", common.ErrMissingConfig)
	}
	worksheet := config.Worksheet
	if worksheet == "" {
		worksheet = DefaultWorksheet
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Reader{
		service:       service,
		logger:        logger,
		spreadsheetID: config.SpreadsheetID,
		worksheet:     worksheet,
		timeout:       config.Timeout,
	}, nil
}

// FetchAll implements service.Source.
func (r *Reader) FetchAll(ctx context.Context) ([]model.Record, error) {
	table, err := r.FetchTable(ctx)
	if err != nil {
		return nil, err
	}
	return table.Records, nil
}

// FetchTable reads the worksheet and converts it into records keyed by
// the header row.
func (r *Reader) FetchTable(ctx context.Context) (*model.Table, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, worksheetRange(r.worksheet)).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		fields := common.Fields{"spreadsheet_id": r.spreadsheetID, "worksheet": r.worksheet}
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			fields["status"] = apiErr.Code
		}
		common.LogError(r.logger, err, "failed to read worksheet", fields)
		return nil, fmt.Errorf("%w: reading %s!%s: %v", common.ErrSourceUnavailable, r.spreadsheetID, r.worksheet, err)
	}

	table := TableFromValues(resp.Values)
	r.logger.Debug("worksheet fetched",
		"worksheet", r.worksheet,
		"records", len(table.Records),
		"duration", time.Since(start))

	if len(table.Records) == 0 {
		return nil, fmt.Errorf("%w: worksheet %s", common.ErrEmptyDataset, r.worksheet)
	}
	return table, nil
}

// TableFromValues converts a raw value grid into records. The first row
// is the header. Rows shorter than the header are padded with "" and rows
// with no non-blank cell are dropped.
func TableFromValues(values [][]any) *model.Table {
	if len(values) == 0 {
		return &model.Table{}
	}

	headers := make([]string, len(values[0]))
	for i, cell := range values[0] {
		headers[i] = strings.TrimSpace(cast.ToString(cell))
	}

	records := make([]model.Record, 0, len(values)-1)
	for _, row := range values[1:] {
		if isBlankRow(row) {
			continue
		}
		record := make(model.Record, len(headers))
		for i, header := range headers {
			if i < len(row) && row[i] != nil {
				record[header] = row[i]
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}

	return &model.Table{Columns: headers, Records: records}
}

func isBlankRow(row []any) bool {
	for _, cell := range row {
		if strings.TrimSpace(cast.ToString(cell)) != "" {
			return false
		}
	}
	return true
}

// worksheetRange quotes a sheet title as an A1 range covering the whole
// sheet.
func worksheetRange(worksheet string) string {
	return "'" + strings.ReplaceAll(worksheet, "'", "''") + "'"
}
