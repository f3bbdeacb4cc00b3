// Package types contains common types used across the application
package types

import "sort"

// Entry represents one row of a run's impact ranking.
type Entry struct {
	Rank        int     `json:"rank"`
	Name        string  `json:"name"`
	Affiliation string  `json:"affiliation,omitempty"`
	Score       float64 `json:"impact_score"`
}

// Rank orders entries by score descending, ties broken by name, and
// assigns 1-based ranks. Equal scores share a rank.
func Rank(entries []Entry) []Entry {
	out := append([]Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	for i := range out {
		if i > 0 && out[i].Score == out[i-1].Score {
			out[i].Rank = out[i-1].Rank
			continue
		}
		out[i].Rank = i + 1
	}
	return out
}

// Top returns at most n leading entries of a ranked slice.
func Top(ranked []Entry, n int) []Entry {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
