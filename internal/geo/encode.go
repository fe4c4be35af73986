package geo

import (
	"encoding/json"
	"fmt"

	"github.com/woozymasta/snapmap/internal/feature"

	"gopkg.in/yaml.v3"
)

// Format names a snapshot encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatGeoJSON Format = "geojson"
)

// Encode serializes features in the requested format. JSON is the flat
// record array the viewer loads; GeoJSON is the point collection.
func Encode(features []feature.Feature, format Format) ([]byte, error) {
	if features == nil {
		features = []feature.Feature{}
	}

	switch format {
	case FormatJSON, "":
		return json.MarshalIndent(features, "", "  ")
	case FormatYAML:
		return yaml.Marshal(features)
	case FormatGeoJSON:
		return json.MarshalIndent(FeatureCollection(features), "", "  ")
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
