package query

import (
	"sort"

	"github.com/woozymasta/snapmap/internal/feature"
	"github.com/woozymasta/snapmap/internal/geo"
)

// Hit is a feature with its distance from the query point.
type Hit struct {
	Feature    feature.Feature `json:"feature"`
	DistanceKm float64         `json:"distance_km"`
}

// Nearest returns up to limit features closest to the point, nearest first.
// Equal distances keep collection order.
func Nearest(features []feature.Feature, at feature.LatLng, limit int) []Hit {
	if limit <= 0 || len(features) == 0 {
		return []Hit{}
	}

	hits := make([]Hit, len(features))
	for i, ft := range features {
		hits[i] = Hit{Feature: ft, DistanceKm: geo.DistanceKm(at, ft.Coordinates)}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].DistanceKm < hits[j].DistanceKm
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}
