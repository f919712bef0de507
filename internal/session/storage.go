package session

import (
	"context"

	"festadmin/internal/cache"
)

// Fixed storage keys for the persisted client state.
const (
	SessionKey = "festadmin:session"
	LocaleKey  = "festadmin:locale"
)

// Storage is the durable key-value store behind the session store.
// Production uses Redis through the cache wrapper; tests use a map.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// CacheStorage adapts cache.Client to Storage. Session state has no TTL:
// expiry is judged against the session's own exp claim, and stale blobs are
// discarded on hydration.
type CacheStorage struct {
	cache *cache.Client
}

// NewCacheStorage wraps a cache client.
func NewCacheStorage(c *cache.Client) *CacheStorage {
	return &CacheStorage{cache: c}
}

func (s *CacheStorage) Get(ctx context.Context, key string) ([]byte, error) {
	return s.cache.Get(ctx, key)
}

func (s *CacheStorage) Set(ctx context.Context, key string, value []byte) error {
	return s.cache.Set(ctx, key, value, 0)
}

func (s *CacheStorage) Delete(ctx context.Context, key string) error {
	return s.cache.Delete(ctx, key)
}
