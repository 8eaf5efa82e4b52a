// ABOUTME: SQLite-based cache backend for persistent caching
// ABOUTME: Survives restarts and purges expired rows on open and periodically

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "shopping-assistant-api/core/errors"
)

const cleanupInterval = 5 * time.Minute

// Client implements the Cache interface using SQLite.
type Client struct {
	db         *sql.DB
	filePath   string
	defaultTTL time.Duration
}

// New creates a SQLite cache at filePath, creating the schema if needed and
// purging rows that expired since the last run. Entries written with a zero
// TTL expire after defaultTTL.
func New(filePath string, defaultTTL time.Duration) (*Client, error) {
	if filePath == "" {
		filePath = "cache.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:         db,
		filePath:   filePath,
		defaultTTL: defaultTTL,
	}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	client.cleanup()
	go client.cleanupRoutine()

	return client, nil
}

// initSchema creates the cache table if it doesn't exist
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_expiry ON cache(expiry);
	`

	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a value from the cache. Missing and expired rows both read
// as a miss.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	var value []byte

	query := "SELECT value FROM cache WHERE key = ? AND expiry > ?"
	err := c.db.QueryRowContext(ctx, query, key, time.Now().Unix()).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &apperrors.CacheError{Op: "get", Key: key, Err: err}
	}

	return value, nil
}

// Set stores a value in the cache with the given TTL.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if ttl == 0 {
		ttl = c.defaultTTL
	}
	expiry := time.Now().Add(ttl).Unix()

	query := `
		INSERT OR REPLACE INTO cache (key, value, expiry)
		VALUES (?, ?, ?)
	`

	if _, err := c.db.ExecContext(ctx, query, key, value, expiry); err != nil {
		return &apperrors.CacheError{Op: "set", Key: key, Err: err}
	}

	return nil
}

// Delete removes a value from the cache.
func (c *Client) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	query := "DELETE FROM cache WHERE key = ?"
	if _, err := c.db.ExecContext(ctx, query, key); err != nil {
		return &apperrors.CacheError{Op: "delete", Key: key, Err: err}
	}

	return nil
}

// cleanupRoutine periodically removes expired entries
func (c *Client) cleanupRoutine() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

// cleanup removes expired entries
func (c *Client) cleanup() {
	query := "DELETE FROM cache WHERE expiry <= ?"
	_, _ = c.db.Exec(query, time.Now().Unix())
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}
