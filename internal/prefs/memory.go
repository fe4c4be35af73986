package prefs

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps keys for the process lifetime.
type MemoryStore struct {
	cache *cache.Cache
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: cache.New(cache.NoExpiration, 0)}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	x, found := s.cache.Get(key)
	if !found {
		return "", false, nil
	}
	v, ok := x.(string)
	return v, ok, nil
}

// Set implements Store.
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.cache.Set(key, value, cache.NoExpiration)
	return nil
}
