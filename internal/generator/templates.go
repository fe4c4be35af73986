package generator

import "github.com/woozymasta/snapmap/internal/feature"

// Templates holds the detail templates per category. Placeholders in curly
// braces are filled by Fill; anything unrecognized is kept verbatim.
var Templates = map[feature.Category][]string{
	feature.Mountains: {"Peak with elevation {elevation}m, located in {location}.", "Known for its challenging climb in {location}."},
	feature.Rivers:    {"Flows {length}km through {countries}.", "Major river in {region}, supports agriculture."},
	feature.Lakes:     {"Covers {area} km², located in {location}.", "Important for biodiversity in {region}."},
	feature.Glaciers:  {"Extends {length}km in {region}.", "One of the largest glaciers in {continent}."},
	feature.Deserts:   {"Spans {area} km² in {region}.", "Known for its arid conditions in {location}."},
	feature.Plateaus:  {"Average elevation {elevation}m, spans {region}.", "Rich in minerals in {location}."},
	feature.Dams:      {"Hydroelectric dam in {location}, powers {capacity} MW.", "Key infrastructure in {region}."},
	feature.Passes:    {"Trade route connecting {location1} to {location2}.", "Historic pass in {region}."},
	feature.Wetlands:  {"Ramsar site in {location}, supports migratory birds.", "Vital ecosystem in {region}."},
	feature.Forests:   {"Covers {area} km², known for {species} in {region}.", "Protected forest in {location}."},
}

// span is a half-open integer range [Min, Min+Width).
type span struct {
	Min, Width int
}

// Numeric placeholder ranges.
var (
	elevationSpan = span{Min: 1000, Width: 8000}
	lengthSpan    = span{Min: 100, Width: 5000}
	areaSpan      = span{Min: 1000, Width: 100000}
	capacitySpan  = span{Min: 500, Width: 5000}
)
