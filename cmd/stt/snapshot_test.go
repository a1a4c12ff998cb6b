package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/stt-search/internal/common"
	"github.com/Veraticus/stt-search/internal/model"
	"github.com/Veraticus/stt-search/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingTableSource struct {
	err error
}

func (f failingTableSource) FetchAll(context.Context) ([]model.Record, error) {
	return nil, f.err
}

func (f failingTableSource) FetchTable(context.Context) (*model.Table, error) {
	return nil, f.err
}

func TestCopySnapshot(t *testing.T) {
	ctx := context.Background()

	src := testutil.SetupTestSnapshot(t, testutil.NewRecordBuilder().
		Route("Jakarta", "Surabaya", "Januari", "5").
		Route("Jakarta", "Surabaya", "Maret", "3").
		Route("Bandung", "Medan", "April", "2").
		Table())
	dst := testutil.SetupTestSnapshot(t, nil)

	var progress bytes.Buffer
	rows, err := copySnapshot(ctx, src, dst, &progress)
	require.NoError(t, err)
	assert.Equal(t, 3, rows)

	table, err := dst.FetchTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kota Asal", "Kota Tujuan", "Bulan", "Jumlah STT"}, table.Columns)
	require.Len(t, table.Records, 3)
	assert.Equal(t, "Bandung", table.Records[2].String("Kota Asal"))

	count, err := table.Records[0].Int("Jumlah STT")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestCopySnapshotReplacesPreviousContents(t *testing.T) {
	ctx := context.Background()

	dst := testutil.SetupTestSnapshot(t, testutil.NewRecordBuilder().
		Route("Old", "Route", "Mei", "9").
		Table())
	src := testutil.SetupTestSnapshot(t, testutil.NewRecordBuilder().
		Route("Jakarta", "Surabaya", "Januari", "5").
		Table())

	_, err := copySnapshot(ctx, src, dst, &bytes.Buffer{})
	require.NoError(t, err)

	records, err := dst.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Jakarta", records[0].String("Kota Asal"))
}

func TestCopySnapshotSourceError(t *testing.T) {
	dst := testutil.SetupTestSnapshot(t, nil)
	src := failingTableSource{err: common.ErrSourceUnavailable}

	rows, err := copySnapshot(context.Background(), src, dst, &bytes.Buffer{})
	require.Error(t, err)
	assert.Zero(t, rows)
	assert.True(t, errors.Is(err, common.ErrSourceUnavailable))
	assert.Contains(t, err.Error(), "failed to fetch table")
}
