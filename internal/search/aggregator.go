package search

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/stt-search/internal/common"
	"github.com/Veraticus/stt-search/internal/model"
)

// Aggregate sums the count column per month for records whose normalized
// origin and destination equal the resolved cities and whose month is in
// the month table. Records with a count that is not a number are logged
// and skipped. ErrNoMatch is returned when no month accumulated a count.
func Aggregate(records []model.Record, origin, destination string, cols model.Columns, logger *slog.Logger) (map[string]int, error) {
	totals := make(map[string]int)

	for i, r := range records {
		if r.Normalized(cols.Origin) != origin || r.Normalized(cols.Destination) != destination {
			continue
		}
		month := r.Normalized(cols.Month)
		if !model.IsMonth(month) {
			continue
		}

		count, err := r.Int(cols.Count)
		if err != nil {
			logger.Warn("skipping record with invalid count",
				"row", i+1,
				"month", month,
				"error", err)
			continue
		}
		totals[month] += count
	}

	if len(totals) == 0 {
		return nil, fmt.Errorf("%w: %s -> %s", common.ErrNoMatch, origin, destination)
	}
	return totals, nil
}
