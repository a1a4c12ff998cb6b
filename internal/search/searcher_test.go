package search

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/stt-search/internal/common"
	"github.com/Veraticus/stt-search/internal/model"
	"github.com/Veraticus/stt-search/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearcher(t *testing.T, source *testutil.MockSource) *Searcher {
	t.Helper()
	s, err := NewSearcher(source, model.DefaultColumns(), common.DiscardLogger())
	require.NoError(t, err)
	return s
}

func TestSearcher_Scenario(t *testing.T) {
	source := testutil.NewMockSource(testutil.ScenarioRecords())
	s := newTestSearcher(t, source)

	resp, err := s.Search(context.Background(), "jakarta", "surabaya")
	require.NoError(t, err)

	assert.Equal(t, "Jakarta", resp.Origin)
	assert.Equal(t, "Surabaya", resp.Destination)
	assert.Equal(t, 2, resp.MonthsFound)
	assert.Equal(t, model.MonthTotals{
		{Month: "januari", Total: 5},
		{Month: "maret", Total: 3},
	}, resp.PerMonth)
	assert.Equal(t, 8, resp.Total)
	assert.Equal(t, 1, source.Calls())
}

func TestSearcher_FuzzyQuery(t *testing.T) {
	s := newTestSearcher(t, testutil.NewMockSource(testutil.ScenarioRecords()))

	resp, err := s.Search(context.Background(), "Jakrta", " SURABYA ")
	require.NoError(t, err)
	assert.Equal(t, "Jakarta", resp.Origin)
	assert.Equal(t, "Surabaya", resp.Destination)
	assert.Equal(t, 8, resp.Total)
}

func TestSearcher_OrderIndependentOfRowOrder(t *testing.T) {
	records := testutil.NewRecordBuilder().
		Route("Jakarta", "Surabaya", "Desember", "1").
		Route("Jakarta", "Surabaya", "Agustus", "1").
		Route("Jakarta", "Surabaya", "Februari", "1").
		Route("Jakarta", "Surabaya", "Oktober", "1").
		Build()
	s := newTestSearcher(t, testutil.NewMockSource(records))

	resp, err := s.Search(context.Background(), "jakarta", "surabaya")
	require.NoError(t, err)

	months := []string{}
	for _, mt := range resp.PerMonth {
		months = append(months, mt.Month)
	}
	assert.Equal(t, []string{"februari", "agustus", "oktober", "desember"}, months)
}

func TestSearcher_Errors(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*testutil.MockSource)
		origin      string
		destination string
		wantErr     error
		wantFetches int
	}{
		{
			name:        "missing destination",
			origin:      "jakarta",
			destination: "  ",
			wantErr:     common.ErrValidation,
			wantFetches: 0,
		},
		{
			name:        "missing origin",
			origin:      "",
			destination: "surabaya",
			wantErr:     common.ErrValidation,
			wantFetches: 0,
		},
		{
			name: "source unavailable",
			setup: func(m *testutil.MockSource) {
				m.SetError(errors.New("oauth2: token expired"))
			},
			origin:      "jakarta",
			destination: "surabaya",
			wantErr:     common.ErrSourceUnavailable,
			wantFetches: 1,
		},
		{
			name: "empty dataset",
			setup: func(m *testutil.MockSource) {
				m.Records = nil
			},
			origin:      "jakarta",
			destination: "surabaya",
			wantErr:     common.ErrEmptyDataset,
			wantFetches: 1,
		},
		{
			name:        "no match",
			origin:      "jakarta",
			destination: "medan",
			wantErr:     common.ErrNoMatch,
			wantFetches: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := testutil.NewMockSource(testutil.ScenarioRecords())
			if tt.setup != nil {
				tt.setup(source)
			}
			s := newTestSearcher(t, source)

			resp, err := s.Search(context.Background(), tt.origin, tt.destination)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantFetches, source.Calls())
		})
	}
}

func TestSearcher_EmptySliceWithoutErrorIsEmptyDataset(t *testing.T) {
	source := testutil.NewMockSource(nil)
	source.FetchFunc = func(context.Context) ([]model.Record, error) {
		return []model.Record{}, nil
	}
	s := newTestSearcher(t, source)

	_, err := s.Search(context.Background(), "jakarta", "surabaya")
	assert.ErrorIs(t, err, common.ErrEmptyDataset)
}

func TestNewSearcher_Validation(t *testing.T) {
	_, err := NewSearcher(nil, model.DefaultColumns(), nil)
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	cols := model.DefaultColumns()
	cols.Count = ""
	_, err = NewSearcher(testutil.NewMockSource(nil), cols, nil)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}
