package search

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResponse(t *testing.T) {
	resp := BuildResponse("jakarta utara", "surabaya", map[string]int{
		"desember": 2,
		"januari":  5,
		"maret":    3,
	})

	assert.Equal(t, "Jakarta Utara", resp.Origin)
	assert.Equal(t, "Surabaya", resp.Destination)
	assert.Equal(t, 3, resp.MonthsFound)
	assert.Equal(t, 10, resp.Total)

	months := []string{}
	for _, mt := range resp.PerMonth {
		months = append(months, mt.Month)
	}
	assert.Equal(t, []string{"januari", "maret", "desember"}, months)
}

func TestResponseJSON(t *testing.T) {
	resp := BuildResponse("jakarta", "surabaya", map[string]int{"maret": 3, "januari": 5})

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"Kota_Asal":"Jakarta","Kota_Tujuan":"Surabaya","total_bulan_ditemukan":2,"total_stt_per_bulan":{"januari":5,"maret":3},"total_stt_semua_bulan":8}`,
		string(data))
	assert.Contains(t, string(data), `{"januari":5,"maret":3}`)
}
