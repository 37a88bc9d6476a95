package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer so repositories don't
// depend on a concrete Redis client.
type Cache interface {
	// Get fetches a cached value and unmarshals it into dest.
	// Returns (false, nil) on a miss; dest is untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes all keys matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
