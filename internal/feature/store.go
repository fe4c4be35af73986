package feature

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"gopkg.in/yaml.v3"
)

// Load reads a snapshot from disk and validates it. The encoding follows
// the file extension: .yaml/.yml, .geojson, anything else is JSON.
func Load(path string) (Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	c, err := decode(path, data)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate dataset %s: %w", path, err)
	}

	return c, nil
}

func decode(path string, data []byte) (Collection, error) {
	var c Collection

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, err
		}
	case ".geojson":
		return decodeGeoJSON(data)
	default:
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
	}

	if c == nil {
		c = Collection{}
	}
	return c, nil
}

// decodeGeoJSON reads the point collection written by the export encoders.
func decodeGeoJSON(data []byte) (Collection, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	c := make(Collection, 0, len(fc.Features))
	for i, gf := range fc.Features {
		pt, ok := gf.Geometry.(orb.Point)
		if !ok {
			return nil, fmt.Errorf("feature #%d: geometry is not a point", i)
		}

		var id int
		switch v := gf.ID.(type) {
		case float64:
			id = int(v)
		case int:
			id = v
		default:
			return nil, fmt.Errorf("feature #%d: missing numeric id", i)
		}

		c = append(c, Feature{
			ID:          id,
			Continent:   Continent(gf.Properties.MustString("continent", "")),
			Category:    Category(gf.Properties.MustString("category", "")),
			Name:        gf.Properties.MustString("name", ""),
			Coordinates: LatLng{pt.Lat(), pt.Lon()},
			Details:     gf.Properties.MustString("details", ""),
		})
	}

	return c, nil
}

// WriteFile replaces the file at path with data, creating parent
// directories as needed. The previous content is never merged.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0644)
}
