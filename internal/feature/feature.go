// Package feature defines the geographic feature record, its fixed
// enumerations and the canonical continent bounds table.
package feature

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

var (
	ErrInvalidID        = errors.New("feature id must be positive")
	ErrDuplicateID      = errors.New("duplicate feature id")
	ErrUnknownContinent = errors.New("unknown continent")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrOutOfBounds      = errors.New("coordinates outside continent bounds")
)

// LatLng is a coordinate pair stored latitude first, as the viewer expects.
type LatLng [2]float64

// Lat returns the latitude.
func (ll LatLng) Lat() float64 { return ll[0] }

// Lon returns the longitude.
func (ll LatLng) Lon() float64 { return ll[1] }

// Point converts the pair into an orb point ({lon, lat}).
func (ll LatLng) Point() orb.Point { return orb.Point{ll[1], ll[0]} }

// Feature is a single point of interest.
type Feature struct {
	ID          int       `json:"id" yaml:"id"`
	Continent   Continent `json:"continent" yaml:"continent"`
	Category    Category  `json:"category" yaml:"category"`
	Name        string    `json:"name" yaml:"name"`
	Coordinates LatLng    `json:"coordinates" yaml:"coordinates,flow"`
	Details     string    `json:"details" yaml:"details"`
}

// Validate checks enum membership and that the coordinates fall inside the
// continent box.
func (f Feature) Validate() error {
	if f.ID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, f.ID)
	}
	if !f.Continent.Valid() {
		return fmt.Errorf("feature %d: %w %q", f.ID, ErrUnknownContinent, f.Continent)
	}
	if !f.Category.Valid() {
		return fmt.Errorf("feature %d: %w %q", f.ID, ErrUnknownCategory, f.Category)
	}
	if !f.Continent.Bounds().Contains(f.Coordinates.Point()) {
		return fmt.Errorf("feature %d (%s): %w %v", f.ID, f.Continent, ErrOutOfBounds, f.Coordinates)
	}
	return nil
}

// Collection is an immutable snapshot of features. Callers must treat the
// slice as read-only; derived views are always new slices.
type Collection []Feature

// Validate runs Feature.Validate on every record and checks id uniqueness.
func (c Collection) Validate() error {
	seen := make(map[int]struct{}, len(c))
	for _, f := range c {
		if err := f.Validate(); err != nil {
			return err
		}
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateID, f.ID)
		}
		seen[f.ID] = struct{}{}
	}
	return nil
}

// Continents returns the distinct continents present, in first-seen order.
func (c Collection) Continents() []Continent {
	seen := make(map[Continent]struct{})
	out := make([]Continent, 0, len(Continents))
	for _, f := range c {
		if _, ok := seen[f.Continent]; ok {
			continue
		}
		seen[f.Continent] = struct{}{}
		out = append(out, f.Continent)
	}
	return out
}

// Categories returns the distinct categories present, in first-seen order.
func (c Collection) Categories() []Category {
	seen := make(map[Category]struct{})
	out := make([]Category, 0, len(Categories))
	for _, f := range c {
		if _, ok := seen[f.Category]; ok {
			continue
		}
		seen[f.Category] = struct{}{}
		out = append(out, f.Category)
	}
	return out
}
