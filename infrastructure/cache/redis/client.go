// ABOUTME: Redis cache backend using the go-redis client
// ABOUTME: Lets multiple assistant runs on different hosts share scrape results

package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "shopping-assistant-api/core/errors"
	"shopping-assistant-api/pkg/config"
)

// Client implements the Cache interface using Redis.
type Client struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// New creates a Redis cache and verifies the connection. Entries written
// with a zero TTL expire after defaultTTL.
func New(cfg config.RedisConfig, defaultTTL time.Duration) (*Client, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Client{client: client, defaultTTL: defaultTTL}, nil
}

// Get retrieves a value from Redis. A miss is reported as (nil, nil).
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, &apperrors.CacheError{Op: "get", Key: key, Err: err}
	}

	return val, nil
}

// Set stores a value in Redis with the given TTL.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return &apperrors.CacheError{Op: "set", Key: key, Err: err}
	}
	return nil
}

// Delete removes a key from Redis. Deleting a missing key is not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	c.client.Del(ctx, key)
	return nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.client.Close()
}
