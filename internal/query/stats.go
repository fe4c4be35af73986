package query

import "github.com/woozymasta/snapmap/internal/feature"

// Stats are the counters shown next to the filters.
type Stats struct {
	Features   int `json:"features"`
	Continents int `json:"continents"`
	Categories int `json:"categories"`
}

// Summarize counts the visible features and the distinct continents and
// categories of the whole collection, so the latter ignore any filter.
func Summarize(all feature.Collection, visible []feature.Feature) Stats {
	return Stats{
		Features:   len(visible),
		Continents: len(all.Continents()),
		Categories: len(all.Categories()),
	}
}
