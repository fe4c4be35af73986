// Package query derives the visible feature subset, search suggestions and
// statistics from an immutable collection. Every function is pure.
package query

import (
	"strings"

	"github.com/woozymasta/snapmap/internal/feature"
)

// SuggestionLimit is the number of names offered by the search box.
const SuggestionLimit = 5

// Filter is the active selection. Continent and Category take an enum
// value or feature.All; an empty value is treated as All.
type Filter struct {
	Continent string `json:"continent" yaml:"continent"`
	Category  string `json:"category" yaml:"category"`
	Search    string `json:"search" yaml:"search"`
}

// Apply returns the features visible under f. A non-empty search overrides
// the continent and category selection entirely.
func Apply(features []feature.Feature, f Filter) []feature.Feature {
	out := make([]feature.Feature, 0, len(features))

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		for _, ft := range features {
			if matches(ft, needle) {
				out = append(out, ft)
			}
		}
		return out
	}

	for _, ft := range features {
		if selected(f.Continent, string(ft.Continent)) && selected(f.Category, string(ft.Category)) {
			out = append(out, ft)
		}
	}
	return out
}

// Suggest returns up to limit names of features matching q, in collection
// order and without deduplication. An empty q yields no suggestions.
func Suggest(features []feature.Feature, q string, limit int) []string {
	out := []string{}
	if q == "" || limit <= 0 {
		return out
	}

	needle := strings.ToLower(q)
	for _, ft := range features {
		if !matches(ft, needle) {
			continue
		}
		out = append(out, ft.Name)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Matches reports whether q is a case-insensitive substring of the name,
// category or continent of ft.
func Matches(ft feature.Feature, q string) bool {
	return matches(ft, strings.ToLower(q))
}

func matches(ft feature.Feature, needle string) bool {
	return strings.Contains(strings.ToLower(ft.Name), needle) ||
		strings.Contains(strings.ToLower(string(ft.Category)), needle) ||
		strings.Contains(strings.ToLower(string(ft.Continent)), needle)
}

func selected(want, have string) bool {
	return want == "" || want == feature.All || want == have
}
