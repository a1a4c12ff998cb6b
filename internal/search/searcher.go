package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/stt-search/internal/common"
	"github.com/Veraticus/stt-search/internal/model"
	"github.com/Veraticus/stt-search/internal/service"
)

// Searcher runs the full search pipeline against a data source.
type Searcher struct {
	source  service.Source
	logger  *slog.Logger
	columns model.Columns
}

// NewSearcher creates a Searcher reading records from source.
func NewSearcher(source service.Source, columns model.Columns, logger *slog.Logger) (*Searcher, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: source is required", common.ErrMissingConfig)
	}
	if err := columns.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Searcher{
		source:  source,
		columns: columns,
		logger:  logger,
	}, nil
}

// Search fetches every record, resolves both cities against the values
// present in the data, and returns the per-month totals for the route.
func (s *Searcher) Search(ctx context.Context, origin, destination string) (*Response, error) {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)
	if origin == "" || destination == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", common.ErrValidation)
	}

	s.logger.Info("search requested", "origin", origin, "destination", destination)

	records, err := s.source.FetchAll(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrEmptyDataset) && !errors.Is(err, common.ErrSourceUnavailable) {
			err = fmt.Errorf("%w: %w", common.ErrSourceUnavailable, err)
		}
		return nil, err
	}
	if len(records) == 0 {
		return nil, common.ErrEmptyDataset
	}

	resolvedOrigin := ResolveCity(origin, KnownCities(records, s.columns.Origin))
	resolvedDestination := ResolveCity(destination, KnownCities(records, s.columns.Destination))
	s.logger.Debug("cities resolved",
		"origin", origin,
		"resolved_origin", resolvedOrigin,
		"destination", destination,
		"resolved_destination", resolvedDestination)

	totals, err := Aggregate(records, resolvedOrigin, resolvedDestination, s.columns, s.logger)
	if err != nil {
		return nil, err
	}

	resp := BuildResponse(resolvedOrigin, resolvedDestination, totals)
	s.logger.Info("search completed",
		"origin", resp.Origin,
		"destination", resp.Destination,
		"months", resp.MonthsFound,
		"total", resp.Total)
	return resp, nil
}
