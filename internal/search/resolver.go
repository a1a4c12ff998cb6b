// Package search resolves fuzzy city names and aggregates STT counts per
// month for an origin/destination pair.
package search

import (
	"sort"
	"strings"

	"github.com/Veraticus/stt-search/internal/model"
	"github.com/pmezard/go-difflib/difflib"
)

// MatchCutoff is the minimum similarity ratio a known city needs to
// replace the query.
const MatchCutoff = 0.6

// ResolveCity returns the known city closest to query, or the normalized
// query when no candidate scores at least MatchCutoff. Similarity is the
// character-level SequenceMatcher ratio. Equal scores go to the
// lexicographically greatest candidate so the result never depends on
// the order of known.
func ResolveCity(query string, known []string) string {
	query = model.Normalize(query)

	matcher := difflib.NewMatcher(nil, splitChars(query))

	best := ""
	bestScore := -1.0
	for _, candidate := range known {
		matcher.SetSeq1(splitChars(candidate))
		if matcher.RealQuickRatio() < MatchCutoff || matcher.QuickRatio() < MatchCutoff {
			continue
		}
		score := matcher.Ratio()
		if score < MatchCutoff {
			continue
		}
		if score > bestScore || (score == bestScore && candidate > best) {
			best = candidate
			bestScore = score
		}
	}

	if bestScore < 0 {
		return query
	}
	return best
}

// KnownCities collects the distinct normalized values of column, sorted.
func KnownCities(records []model.Record, column string) []string {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		seen[r.Normalized(column)] = struct{}{}
	}

	cities := make([]string, 0, len(seen))
	for city := range seen {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

func splitChars(s string) []string {
	return strings.Split(s, "")
}
