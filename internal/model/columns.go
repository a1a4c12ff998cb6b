package model

import (
	"fmt"
	"strings"
)

// Default header names of the STT worksheet.
const (
	DefaultOriginColumn      = "Kota Asal"
	DefaultDestinationColumn = "Kota Tujuan"
	DefaultMonthColumn       = "Bulan"
	DefaultCountColumn       = "Jumlah STT"
)

// Columns names the header cells the search reads from each record.
type Columns struct {
	Origin      string
	Destination string
	Month       string
	Count       string
}

// DefaultColumns returns the header names used by the STT worksheet.
func DefaultColumns() Columns {
	return Columns{
		Origin:      DefaultOriginColumn,
		Destination: DefaultDestinationColumn,
		Month:       DefaultMonthColumn,
		Count:       DefaultCountColumn,
	}
}

// Validate ensures every column name is set.
func (c Columns) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"origin", c.Origin},
		{"destination", c.Destination},
		{"month", c.Month},
		{"count", c.Count},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("column name for %s cannot be empty", f.name)
		}
	}
	return nil
}
