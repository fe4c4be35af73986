package geo

import (
	"github.com/woozymasta/snapmap/internal/feature"

	"github.com/golang/geo/s2"
)

// EarthRadiusKm is the mean Earth radius used to turn angles into distances.
const EarthRadiusKm = 6371.0088

// DistanceKm returns the great-circle distance between two coordinate pairs.
func DistanceKm(a, b feature.LatLng) float64 {
	la := s2.LatLngFromDegrees(a.Lat(), a.Lon())
	lb := s2.LatLngFromDegrees(b.Lat(), b.Lon())
	return la.Distance(lb).Radians() * EarthRadiusKm
}

// ValidLatLng reports whether the pair is a real position on the globe.
func ValidLatLng(ll feature.LatLng) bool {
	return s2.LatLngFromDegrees(ll.Lat(), ll.Lon()).IsValid()
}
