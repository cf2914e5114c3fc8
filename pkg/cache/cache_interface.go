package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer.
// Implementations: Redis (production), in-memory stub (tests).
type Cache interface {
	// Get fetches a key and unmarshals it into dest.
	// found=false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes all keys matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Exists reports whether a key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// Ping checks the connection.
	Ping(ctx context.Context) error
}
