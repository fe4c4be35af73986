// Package geo handles GeoJSON conversion, snapshot encodings and distances.
package geo

import (
	"github.com/woozymasta/snapmap/internal/feature"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/paulmach/orb/geojson"
)

// geohashPrecision keeps about 150m of resolution, enough for marker clustering keys.
const geohashPrecision = 7

// FeatureCollection converts features into a GeoJSON collection of points.
// Properties carry everything the viewer popup needs.
func FeatureCollection(features []feature.Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.Features = make([]*geojson.Feature, 0, len(features))

	for _, f := range features {
		fc.Append(Feature(f))
	}

	return fc
}

// Feature converts a single record into a GeoJSON point feature.
func Feature(f feature.Feature) *geojson.Feature {
	gf := geojson.NewFeature(f.Coordinates.Point())
	gf.ID = f.ID
	gf.Properties["name"] = f.Name
	gf.Properties["continent"] = string(f.Continent)
	gf.Properties["category"] = string(f.Category)
	gf.Properties["details"] = f.Details
	gf.Properties["geohash"] = Geohash(f.Coordinates)
	return gf
}

// Geohash encodes a coordinate pair at the package precision.
func Geohash(ll feature.LatLng) string {
	h := geohash.Encode(ll.Lat(), ll.Lon())
	if len(h) > geohashPrecision {
		h = h[:geohashPrecision]
	}
	return h
}
