package kv

import (
	"context"

	goCache "github.com/patrickmn/go-cache"
)

// MemoryStore is a non-durable Store backed by github.com/patrickmn/go-cache.
// Entries never expire; the collection lives as long as the process.
// Used by tests and by the memory storage mode.
type MemoryStore struct {
	cache *goCache.Cache
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: goCache.New(goCache.NoExpiration, 0),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, found := s.cache.Get(key)
	if !found {
		return nil, false, nil
	}
	return value.([]byte), true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	// copy so later caller mutations cannot leak into the stored value
	buf := make([]byte, len(value))
	copy(buf, value)
	s.cache.Set(key, buf, goCache.NoExpiration)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

// Flush removes every key; test helper
func (s *MemoryStore) Flush() {
	s.cache.Flush()
}
