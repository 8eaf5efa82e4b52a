// ABOUTME: Shared test doubles for the enrichment package
// ABOUTME: Func-field mocks so each test configures only the behavior it needs

package enrichment

import (
	"context"
	"sync"
	"time"

	"shopping-assistant-api/core/domain"
)

type mockCache struct {
	mu    sync.Mutex
	store map[string][]byte

	getFunc func(ctx context.Context, key string) ([]byte, error)
	setFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store[key], nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, key)
	return nil
}

func (m *mockCache) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.store)
}

type mockMarketplace struct {
	scrapeFunc func(ctx context.Context, productURL, platform string) ([]domain.Review, error)
}

func (m *mockMarketplace) ScrapeReviews(ctx context.Context, productURL, platform string) ([]domain.Review, error) {
	if m.scrapeFunc != nil {
		return m.scrapeFunc(ctx, productURL, platform)
	}
	return nil, nil
}

type mockForum struct {
	name       string
	searchFunc func(ctx context.Context, productName string, limit int) ([]domain.ForumPost, error)
}

func (m *mockForum) Name() string {
	if m.name != "" {
		return m.name
	}
	return "Reddit"
}

func (m *mockForum) Search(ctx context.Context, productName string, limit int) ([]domain.ForumPost, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, productName, limit)
	}
	return nil, nil
}

type mockLogger struct{}

func (mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (mockLogger) Info(msg string, fields map[string]interface{})  {}
func (mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (mockLogger) Error(msg string, fields map[string]interface{}) {}
