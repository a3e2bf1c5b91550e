package domain

import (
	"sort"
	"strings"
)

// FilterMarkets returns the markets matching the category and free-text
// query, ranked by total volume descending. CategoryAll (or empty)
// disables the category filter; an empty query keeps everything. The sort
// is stable: ties keep their original relative order, so applying the
// filter twice yields the same sequence.
func FilterMarkets(markets []Market, category Category, query string) []Market {
	out := make([]Market, 0, len(markets))
	q := strings.ToLower(strings.TrimSpace(query))

	for _, m := range markets {
		if category != "" && category != CategoryAll && m.Category != category {
			continue
		}
		if q != "" && !matchesQuery(m, q) {
			continue
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalVolume > out[j].TotalVolume
	})
	return out
}

// matchesQuery reports whether the lowercased query appears in the
// question, the description, or any tag.
func matchesQuery(m Market, q string) bool {
	if strings.Contains(strings.ToLower(m.Question), q) {
		return true
	}
	if strings.Contains(strings.ToLower(m.Description), q) {
		return true
	}
	for _, tag := range m.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
