// ABOUTME: Disk cache backend storing one JSON envelope file per key
// ABOUTME: Expiry is checked on read, stale and unreadable entries look like misses

package disk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	apperrors "shopping-assistant-api/core/errors"
)

// envelope wraps a cached payload with the write time and its lifetime.
// Data holds opaque bytes, callers decide the payload encoding.
type envelope struct {
	Timestamp  int64  `json:"timestamp"`
	TTLSeconds int64  `json:"ttl_seconds"`
	Data       []byte `json:"data"`
}

// Client implements the Cache interface using one file per key under dir.
type Client struct {
	dir        string
	defaultTTL time.Duration
}

// New creates a disk cache rooted at dir, creating it if needed. Entries
// written with a zero TTL expire after defaultTTL.
func New(dir string, defaultTTL time.Duration) (*Client, error) {
	if dir == "" {
		return nil, errors.New("cache directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Client{dir: dir, defaultTTL: defaultTTL}, nil
}

// Get retrieves a value from the cache. Missing, expired, and malformed
// entries all read as a miss; the cache never fails a read loudly.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, nil
	}

	// A zero TTL means the entry never expires.
	if env.TTLSeconds != 0 {
		age := time.Now().Unix() - env.Timestamp
		if age >= env.TTLSeconds {
			_ = os.Remove(c.path(key))
			return nil, nil
		}
	}

	return env.Data, nil
}

// Set stores a value with the given TTL. The write goes through a temp file
// and a rename so a crashed write never leaves a half-written entry.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if ttl == 0 {
		ttl = c.defaultTTL
	}

	env := envelope{
		Timestamp:  time.Now().Unix(),
		TTLSeconds: int64(ttl / time.Second),
		Data:       value,
	}

	data, err := json.Marshal(env)
	if err != nil {
		return &apperrors.CacheError{Op: "set", Key: key, Err: err}
	}

	path := c.path(key)
	tmp, err := os.CreateTemp(c.dir, "write-*")
	if err != nil {
		return &apperrors.CacheError{Op: "set", Key: key, Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &apperrors.CacheError{Op: "set", Key: key, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &apperrors.CacheError{Op: "set", Key: key, Err: err}
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return &apperrors.CacheError{Op: "set", Key: key, Err: err}
	}
	return nil
}

// Delete removes a key from the cache. A missing entry is not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	err := os.Remove(c.path(key))
	if err != nil && !os.IsNotExist(err) {
		return &apperrors.CacheError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (c *Client) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}
