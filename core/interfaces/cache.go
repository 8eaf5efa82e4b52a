// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// Implementations can be disk-backed, in-memory, SQLite, or Redis.
//
// The cache is an optimization, never a correctness requirement: reads fail
// closed (a miss and an unreadable or expired entry look identical), and
// callers are expected to treat write failures as non-fatal.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// A miss is reported as (nil, nil); errors are reserved for conditions
	// such as context cancellation.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the implementation's configured default TTL applies.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
