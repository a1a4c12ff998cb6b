package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/Veraticus/stt-search/internal/common"
	"github.com/Veraticus/stt-search/internal/model"
	"github.com/Veraticus/stt-search/internal/search"
	"github.com/Veraticus/stt-search/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchSnapshot(t *testing.T, table *model.Table, origin, destination string) (*search.Response, error) {
	t.Helper()

	store := testutil.SetupTestSnapshot(t, table)
	searcher, err := search.NewSearcher(store, model.DefaultColumns(), common.DiscardLogger())
	require.NoError(t, err)

	return searcher.Search(context.Background(), origin, destination)
}

func TestRenderResult(t *testing.T) {
	table := testutil.NewRecordBuilder().
		Route("Jakarta", "Surabaya", "Maret", "3").
		Route("Jakarta", "Surabaya", "Januari", "5").
		Route("Jakarta", "Medan", "Januari", "7").
		Table()

	resp, err := searchSnapshot(t, table, "jakrta", "surabaya")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderResult(&buf, resp))

	out := buf.String()
	assert.Contains(t, out, "Jakarta → Surabaya")
	assert.Contains(t, out, "Bulan")
	assert.Contains(t, out, "Jumlah STT")
	assert.Contains(t, out, "Total: 8 STT")
	assert.Contains(t, out, "(2 bulan)")

	jan := bytes.Index(buf.Bytes(), []byte("januari"))
	mar := bytes.Index(buf.Bytes(), []byte("maret"))
	require.NotEqual(t, -1, jan)
	require.NotEqual(t, -1, mar)
	assert.Less(t, jan, mar, "months should print in calendar order")
}

func TestWriteJSON(t *testing.T) {
	resp, err := searchSnapshot(t, testutil.NewRecordBuilder().
		Route("Jakarta", "Surabaya", "Januari", "5").
		Route("Jakarta", "Surabaya", "Maret", "3").
		Table(), "Jakarta", "Surabaya")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, resp))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Jakarta", decoded["Kota_Asal"])
	assert.Equal(t, "Surabaya", decoded["Kota_Tujuan"])
	assert.InDelta(t, 2, decoded["total_bulan_ditemukan"], 0)
	assert.InDelta(t, 8, decoded["total_stt_semua_bulan"], 0)
	assert.Contains(t, buf.String(), `"januari": 5,`)
}

func TestQueryError(t *testing.T) {
	tests := []struct {
		err     error
		name    string
		message string
	}{
		{
			name:    "validation",
			err:     fmt.Errorf("%w: origin is required", common.ErrValidation),
			message: "both --asal and --tujuan are required",
		},
		{
			name:    "empty dataset",
			err:     common.ErrEmptyDataset,
			message: "the data source has no records",
		},
		{
			name:    "source failure",
			err:     fmt.Errorf("%w: boom", common.ErrSourceUnavailable),
			message: "failed to read the data source",
		},
		{
			name:    "no match",
			err:     common.ErrNoMatch,
			message: "no shipments found for this route",
		},
		{
			name:    "other",
			err:     errors.New("unexpected"),
			message: "search failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := queryError(tt.err)

			var userErr *common.UserError
			require.ErrorAs(t, err, &userErr)
			assert.Equal(t, tt.message, userErr.UserMessage)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSearchSnapshotNoMatch(t *testing.T) {
	_, err := searchSnapshot(t, testutil.NewRecordBuilder().
		Route("Jakarta", "Surabaya", "Januari", "5").
		Table(), "Medan", "Surabaya")

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNoMatch)
}
