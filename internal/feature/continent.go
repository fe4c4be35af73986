package feature

import "github.com/paulmach/orb"

// All is the filter sentinel that matches every continent or category.
const All = "All"

// Continent is one of the seven fixed continent names.
type Continent string

const (
	Asia         Continent = "Asia"
	Africa       Continent = "Africa"
	NorthAmerica Continent = "North America"
	SouthAmerica Continent = "South America"
	Antarctica   Continent = "Antarctica"
	Europe       Continent = "Europe"
	Australia    Continent = "Australia"
)

// Continents lists every continent in display order.
var Continents = []Continent{Asia, Africa, NorthAmerica, SouthAmerica, Antarctica, Europe, Australia}

// WorldBounds covers the whole globe and is returned for All or unknown names.
var WorldBounds = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

// continentBounds is the single source of truth for continent boxes.
// Points are orb order: {lon, lat}.
var continentBounds = map[Continent]orb.Bound{
	Asia:         {Min: orb.Point{40, 0}, Max: orb.Point{180, 60}},
	Africa:       {Min: orb.Point{-20, -40}, Max: orb.Point{60, 40}},
	NorthAmerica: {Min: orb.Point{-170, 10}, Max: orb.Point{-50, 80}},
	SouthAmerica: {Min: orb.Point{-90, -60}, Max: orb.Point{-30, 10}},
	Antarctica:   {Min: orb.Point{-180, -90}, Max: orb.Point{180, -60}},
	Europe:       {Min: orb.Point{-10, 35}, Max: orb.Point{60, 70}},
	Australia:    {Min: orb.Point{110, -50}, Max: orb.Point{160, -10}},
}

// Valid reports whether c is one of the seven continents.
func (c Continent) Valid() bool {
	_, ok := continentBounds[c]
	return ok
}

// Bounds returns the box of the continent, or WorldBounds when c is not a continent.
func (c Continent) Bounds() orb.Bound {
	if b, ok := continentBounds[c]; ok {
		return b
	}
	return WorldBounds
}

// BoundsOf resolves a filter value (a continent name or All) to its box.
func BoundsOf(name string) orb.Bound {
	return Continent(name).Bounds()
}

// Range is the lat/lon min-max view of a box used for sampling.
type Range struct {
	Lat [2]float64 `json:"lat" yaml:"lat"`
	Lon [2]float64 `json:"lon" yaml:"lon"`
}

// RangeOf converts an orb bound into a Range.
func RangeOf(b orb.Bound) Range {
	return Range{
		Lat: [2]float64{b.Min.Lat(), b.Max.Lat()},
		Lon: [2]float64{b.Min.Lon(), b.Max.Lon()},
	}
}

// Corners returns the box as [[latMin, lonMin], [latMax, lonMax]], the shape
// Leaflet's fitBounds expects.
func Corners(b orb.Bound) [2]LatLng {
	return [2]LatLng{
		{b.Min.Lat(), b.Min.Lon()},
		{b.Max.Lat(), b.Max.Lon()},
	}
}
