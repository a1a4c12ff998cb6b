package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// monthOrder lists the canonical Indonesian month keys in calendar order.
var monthOrder = [12]string{
	"januari", "februari", "maret", "april", "mei", "juni",
	"juli", "agustus", "september", "oktober", "november", "desember",
}

var monthIndex = func() map[string]int {
	m := make(map[string]int, len(monthOrder))
	for i, name := range monthOrder {
		m[name] = i + 1
	}
	return m
}()

// MonthIndex returns the calendar index (1-12) of a normalized month key.
func MonthIndex(month string) (int, bool) {
	idx, ok := monthIndex[month]
	return idx, ok
}

// IsMonth reports whether month is one of the twelve canonical keys.
func IsMonth(month string) bool {
	_, ok := monthIndex[month]
	return ok
}

// Months returns the canonical month keys in calendar order.
func Months() []string {
	out := make([]string, len(monthOrder))
	copy(out, monthOrder[:])
	return out
}

// MonthTotal is the summed STT count for one month.
type MonthTotal struct {
	Month string
	Total int
}

// MonthTotals is a per-month breakdown that serializes as a JSON object
// whose keys keep slice order.
type MonthTotals []MonthTotal

// NewMonthTotals orders a month->total mapping by calendar index.
// Keys outside the month table are dropped.
func NewMonthTotals(totals map[string]int) MonthTotals {
	out := make(MonthTotals, 0, len(totals))
	for month, total := range totals {
		if !IsMonth(month) {
			continue
		}
		out = append(out, MonthTotal{Month: month, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		return monthIndex[out[i].Month] < monthIndex[out[j].Month]
	})
	return out
}

// Sum returns the grand total across all months.
func (m MonthTotals) Sum() int {
	total := 0
	for _, mt := range m {
		total += mt.Total
	}
	return total
}

// MarshalJSON implements json.Marshaler.
func (m MonthTotals) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mt := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(mt.Month)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", mt.Total)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler, preserving key order.
func (m *MonthTotals) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("month totals: expected object, got %v", tok)
	}

	out := MonthTotals{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("month totals: expected string key, got %v", tok)
		}
		var total int
		if err := dec.Decode(&total); err != nil {
			return fmt.Errorf("month totals: value for %q: %w", key, err)
		}
		out = append(out, MonthTotal{Month: key, Total: total})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = out
	return nil
}
