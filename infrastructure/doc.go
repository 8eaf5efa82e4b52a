// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging, and review scraping.
//
// The infrastructure package is organized by technical concern:
//
// - cache/disk: File-based JSON cache, one timestamped entry per fingerprint
// - cache/memory: In-memory cache backed by patrickmn/go-cache
// - cache/sqlite: SQLite-based persistent cache
// - cache/redis: Redis-based cache implementation
// - http/standard: Standard library HTTP client with retry logic
// - logger/structured: Structured logger backed by logrus
// - scraper/marketplace: Marketplace review-page scraper (Amazon, Flipkart)
// - scraper/reddit: Reddit search client used as the forum review source
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Disk Cache Example:
//
//	cache, err := disk.NewDiskCache("./cache", 24*time.Hour)
//	err = cache.Set(ctx, key, []byte("value"), 0) // 0 uses the default TTL
//	value, err := cache.Get(ctx, key)
//
// Expired or unreadable entries behave exactly like misses: Get returns
// (nil, nil) and the caller recomputes the value.
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := structured.NewLogger("info")
//	logger.Info("Enriching product", map[string]interface{}{
//	    "product": "ASUS TUF Gaming F15",
//	    "platform": "amazon",
//	})
package infrastructure
