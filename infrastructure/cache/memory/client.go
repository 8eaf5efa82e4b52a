// ABOUTME: In-memory cache backend built on go-cache
// ABOUTME: Fast but process-local, suited to tests and single-run usage

package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const cleanupInterval = 10 * time.Minute

// Client implements the Cache interface using an in-process store.
type Client struct {
	cache *gocache.Cache
}

// New creates an in-memory cache. Entries written with a zero TTL expire
// after defaultTTL; a zero defaultTTL means they never expire.
func New(defaultTTL time.Duration) *Client {
	return &Client{cache: gocache.New(defaultTTL, cleanupInterval)}
}

// Get retrieves a value from the cache. A miss is reported as (nil, nil).
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, ok := c.cache.Get(key)
	if !ok {
		return nil, nil
	}

	data := value.([]byte)
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a value in the cache with the given TTL.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(key, valueCopy, ttl)
	return nil
}

// Delete removes a key from the cache.
func (c *Client) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}
