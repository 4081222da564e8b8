package cache

import (
	"context"
	"time"
)

// Cache is the key/value port behind the saved routes store.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// A missing key yields an error wrapping ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the specified key and TTL.
	// TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	Delete(ctx context.Context, key string) error

	// Ping checks if the cache service is reachable.
	Ping(ctx context.Context) error

	// Close closes the cache connection.
	Close() error
}
