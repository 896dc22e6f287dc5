// Package cache provides a small byte cache with Redis and no-op backends.
// This is part of the platform layer and contains no business logic.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Cache stores opaque values by key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// NoopCache never stores anything. Used when REDIS_URL is not configured.
type NoopCache struct{}

// NewNoop returns a cache that always misses.
func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (n *NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (n *NoopCache) Delete(ctx context.Context, key string) error {
	return nil
}

// GetOrLoad returns the JSON-decoded value at key, calling load and storing
// its result on a miss. Cache errors degrade to a direct load.
func GetOrLoad[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	if raw, ok, err := c.Get(ctx, key); err == nil && ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if raw, err := json.Marshal(value); err == nil {
		_ = c.Set(ctx, key, raw, ttl)
	}
	return value, nil
}
