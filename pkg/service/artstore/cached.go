package artstore

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultCacheSize = 1000
	defaultCacheTTL  = 1 * time.Hour
)

// CachedStore layers an expirable LRU in front of another KeyValueStore so
// repeated lookups for the same user skip the network round trip. Writes go
// through to the backing store; misses are never cached.
type CachedStore struct {
	inner KeyValueStore
	cache *expirable.LRU[string, string]
}

var _ KeyValueStore = (*CachedStore)(nil)

func NewCachedStore(inner KeyValueStore) *CachedStore {
	return &CachedStore{
		inner: inner,
		cache: expirable.NewLRU[string, string](defaultCacheSize, nil, defaultCacheTTL),
	}
}

func (s *CachedStore) Get(ctx context.Context, key string) (string, error) {
	if value, ok := s.cache.Get(key); ok {
		return value, nil
	}

	value, err := s.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}

	s.cache.Add(key, value)

	return value, nil
}

func (s *CachedStore) Put(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := s.inner.Put(ctx, key, value, ttl); err != nil {
		return err
	}

	s.cache.Add(key, value)

	return nil
}

func (s *CachedStore) Delete(ctx context.Context, key string) error {
	if err := s.inner.Delete(ctx, key); err != nil {
		return err
	}

	s.cache.Remove(key)

	return nil
}

// Invalidate drops a cached value without touching the backing store.
func (s *CachedStore) Invalidate(key string) {
	s.cache.Remove(key)
}

// IsNotFound reports whether err is the store's miss signal.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
