// ABOUTME: Tests for the disk cache backend

package disk

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := New(t.TempDir(), time.Minute)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c
}

func TestNew_EmptyDir(t *testing.T) {
	if _, err := New("", time.Minute); err == nil {
		t.Error("New should reject an empty directory")
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	if _, err := New(dir, time.Minute); err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache directory was not created: %v", err)
	}
}

func TestClient_SetAndGet(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	payload := []byte(`[{"rating":4.5}]`)
	if err := c.Set(ctx, "abc123", payload, time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := c.Get(ctx, "abc123")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Get = %q, want %q", got, payload)
	}
}

func TestClient_GetMiss(t *testing.T) {
	c := newTestClient(t)

	got, err := c.Get(context.Background(), "absent")
	if err != nil {
		t.Errorf("a miss must not be an error, got %v", err)
	}
	if got != nil {
		t.Errorf("Get = %q, want nil", got)
	}
}

func TestClient_Expiry(t *testing.T) {
	dir := t.TempDir()
	c, _ := New(dir, time.Minute)
	ctx := context.Background()

	// A negative TTL writes an already-expired envelope.
	if err := c.Set(ctx, "stale", []byte("old"), -time.Second); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := c.Get(ctx, "stale")
	if err != nil {
		t.Errorf("Get returned error: %v", err)
	}
	if got != nil {
		t.Errorf("expired entry must read as a miss, got %q", got)
	}

	// The stale file is removed on read.
	if _, err := os.Stat(filepath.Join(dir, "stale.json")); !os.IsNotExist(err) {
		t.Error("expired entry file should be removed")
	}
}

func TestClient_ZeroTTLUsesDefault(t *testing.T) {
	c, _ := New(t.TempDir(), time.Hour)
	ctx := context.Background()

	c.Set(ctx, "key", []byte("value"), 0)

	if got, _ := c.Get(ctx, "key"); got == nil {
		t.Error("entry with default TTL should still be readable")
	}
}

func TestClient_MalformedFileReadsAsMiss(t *testing.T) {
	dir := t.TempDir()
	c, _ := New(dir, time.Minute)

	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := c.Get(context.Background(), "bad")
	if err != nil {
		t.Errorf("a malformed entry must not be an error, got %v", err)
	}
	if got != nil {
		t.Errorf("Get = %q, want nil", got)
	}
}

func TestClient_Delete(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	c.Set(ctx, "key", []byte("value"), time.Minute)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if got, _ := c.Get(ctx, "key"); got != nil {
		t.Errorf("Get after Delete = %q, want nil", got)
	}

	// Deleting again is not an error.
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete of a missing key returned error: %v", err)
	}
}

func TestClient_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	c, _ := New(dir, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		c.Set(ctx, "key", []byte("value"), time.Minute)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("got %d files in cache dir, want 1", len(entries))
	}
}
