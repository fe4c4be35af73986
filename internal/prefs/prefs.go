// Package prefs persists the viewer's filter preferences in an injected
// key-value store.
package prefs

import (
	"context"
	"fmt"

	"github.com/woozymasta/snapmap/internal/feature"
	"github.com/woozymasta/snapmap/internal/tiles"
)

// Fixed store keys.
const (
	KeyCategory  = "category"
	KeyContinent = "continent"
	KeyMap       = "map"
)

// Store is a string key-value store.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// BatchStore is a Store that can write several keys in one operation.
// Save uses it when available.
type BatchStore interface {
	Store
	SetMany(ctx context.Context, values map[string]string) error
}

// Preferences are the persisted parts of the filter state.
type Preferences struct {
	Category  string      `json:"category" yaml:"category"`
	Continent string      `json:"continent" yaml:"continent"`
	Map       tiles.Style `json:"map" yaml:"map"`
}

// Defaults returns the values used when nothing is stored.
func Defaults() Preferences {
	return Preferences{
		Category:  feature.All,
		Continent: feature.All,
		Map:       tiles.DefaultStyle,
	}
}

// Normalize replaces unknown values with their defaults.
func (p Preferences) Normalize() Preferences {
	d := Defaults()
	if p.Category != feature.All && !feature.Category(p.Category).Valid() {
		p.Category = d.Category
	}
	if p.Continent != feature.All && !feature.Continent(p.Continent).Valid() {
		p.Continent = d.Continent
	}
	if !p.Map.Valid() {
		p.Map = d.Map
	}
	return p
}

// Load reads the three keys, falling back to defaults for missing or
// unrecognized values.
func Load(ctx context.Context, s Store) (Preferences, error) {
	p := Defaults()

	for _, field := range []struct {
		key string
		dst *string
	}{
		{KeyCategory, &p.Category},
		{KeyContinent, &p.Continent},
		{KeyMap, (*string)(&p.Map)},
	} {
		v, ok, err := s.Get(ctx, field.key)
		if err != nil {
			return Defaults(), fmt.Errorf("load preference %q: %w", field.key, err)
		}
		if ok {
			*field.dst = v
		}
	}

	return p.Normalize(), nil
}

// Save writes all three keys, in one batch when the store supports it.
func Save(ctx context.Context, s Store, p Preferences) error {
	if b, ok := s.(BatchStore); ok {
		values := map[string]string{
			KeyCategory:  p.Category,
			KeyContinent: p.Continent,
			KeyMap:       string(p.Map),
		}
		if err := b.SetMany(ctx, values); err != nil {
			return fmt.Errorf("save preferences: %w", err)
		}
		return nil
	}

	for _, kv := range [][2]string{
		{KeyCategory, p.Category},
		{KeyContinent, p.Continent},
		{KeyMap, string(p.Map)},
	} {
		if err := s.Set(ctx, kv[0], kv[1]); err != nil {
			return fmt.Errorf("save preference %q: %w", kv[0], err)
		}
	}
	return nil
}

// namespaced prefixes every key with a client id.
type namespaced struct {
	store  Store
	prefix string
}

// Namespaced scopes s to one viewer client.
func Namespaced(s Store, id string) Store {
	return &namespaced{store: s, prefix: id + ":"}
}

func (n *namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.store.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key, value string) error {
	return n.store.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) SetMany(ctx context.Context, values map[string]string) error {
	prefixed := make(map[string]string, len(values))
	for k, v := range values {
		prefixed[n.prefix+k] = v
	}

	if b, ok := n.store.(BatchStore); ok {
		return b.SetMany(ctx, prefixed)
	}
	for k, v := range prefixed {
		if err := n.store.Set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}
