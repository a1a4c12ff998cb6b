package search

import (
	"github.com/Veraticus/stt-search/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Response is the body returned for a successful search.
type Response struct {
	Origin      string            `json:"Kota_Asal"`
	Destination string            `json:"Kota_Tujuan"`
	MonthsFound int               `json:"total_bulan_ditemukan"`
	PerMonth    model.MonthTotals `json:"total_stt_per_bulan"`
	Total       int               `json:"total_stt_semua_bulan"`
}

// BuildResponse orders the per-month totals chronologically and fills in
// the summary fields.
func BuildResponse(origin, destination string, totals map[string]int) *Response {
	perMonth := model.NewMonthTotals(totals)
	return &Response{
		Origin:      titleCase(origin),
		Destination: titleCase(destination),
		MonthsFound: len(perMonth),
		PerMonth:    perMonth,
		Total:       perMonth.Sum(),
	}
}

// titleCase builds a fresh Caser per call; Casers are not safe for
// concurrent use.
func titleCase(s string) string {
	return cases.Title(language.Indonesian).String(s)
}
