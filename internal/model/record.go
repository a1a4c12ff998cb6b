// Package model defines the core data types for the STT search service.
package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ErrNotANumber is returned when a count cell cannot be read as an integer.
var ErrNotANumber = errors.New("value is not a number")

// Record is one row of the source table, keyed by header name.
// Values are whatever the source produced: strings, float64 for numeric
// cells, or nil for empty ones.
type Record map[string]any

// String returns the cell as a string. Missing, nil or unconvertible
// cells read as "".
func (r Record) String(column string) string {
	v, ok := r[column]
	if !ok || v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// Normalized returns the trimmed, lower-cased cell value.
func (r Record) Normalized(column string) string {
	return Normalize(r.String(column))
}

// Int coerces the cell to an integer. A missing column counts as zero.
// Numeric strings are accepted with surrounding whitespace; fractional
// values are truncated toward zero.
func (r Record) Int(column string) (int, error) {
	v, ok := r[column]
	if !ok {
		return 0, nil
	}

	switch val := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: empty cell", ErrNotANumber)
	case bool:
		return 0, fmt.Errorf("%w: %v", ErrNotANumber, val)
	case string:
		return parseCount(val)
	case float64:
		return truncateCount(val)
	}

	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotANumber, err)
	}
	return n, nil
}

func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty cell", ErrNotANumber)
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return truncateCount(f)
}

// truncateCount drops the fraction of f. Values outside the int range
// are rejected rather than wrapped.
func truncateCount(f float64) (int, error) {
	if math.IsNaN(f) || f < float64(math.MinInt) || f >= float64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %v out of range", ErrNotANumber, f)
	}
	return int(f), nil
}

// Normalize trims surrounding whitespace and lower-cases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Table is a fetched worksheet: the header row in sheet order plus the
// records built from the rows below it.
type Table struct {
	Columns []string
	Records []Record
}
