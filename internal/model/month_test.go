package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthIndex(t *testing.T) {
	idx, ok := MonthIndex("januari")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	idx, ok = MonthIndex("desember")
	assert.True(t, ok)
	assert.Equal(t, 12, idx)

	_, ok = MonthIndex("january")
	assert.False(t, ok)
	_, ok = MonthIndex("Januari")
	assert.False(t, ok, "lookup expects normalized keys")

	assert.Len(t, Months(), 12)
}

func TestNewMonthTotals_ChronologicalOrder(t *testing.T) {
	totals := NewMonthTotals(map[string]int{
		"desember": 1,
		"april":    4,
		"januari":  5,
		"maret":    3,
		"bogus":    100,
	})

	months := make([]string, 0, len(totals))
	for _, mt := range totals {
		months = append(months, mt.Month)
	}
	assert.Equal(t, []string{"januari", "maret", "april", "desember"}, months)
	assert.Equal(t, 13, totals.Sum())
}

func TestMonthTotals_JSONKeepsOrder(t *testing.T) {
	totals := MonthTotals{
		{Month: "januari", Total: 5},
		{Month: "maret", Total: 3},
		{Month: "desember", Total: 10},
	}

	data, err := json.Marshal(totals)
	require.NoError(t, err)
	assert.Equal(t, `{"januari":5,"maret":3,"desember":10}`, string(data))

	var decoded MonthTotals
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, totals, decoded)
}

func TestMonthTotals_EmptyAndInvalid(t *testing.T) {
	data, err := json.Marshal(MonthTotals{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	var decoded MonthTotals
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`{"januari":"x"}`), &decoded))
}
