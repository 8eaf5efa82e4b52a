// ABOUTME: Main entry point for the shopping assistant CLI
// ABOUTME: Wires the cache, scrapers and core services and runs one recommendation pass

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"shopping-assistant-api/core/analyzer"
	"shopping-assistant-api/core/domain"
	"shopping-assistant-api/core/enrichment"
	apperrors "shopping-assistant-api/core/errors"
	"shopping-assistant-api/core/interfaces"
	"shopping-assistant-api/core/recommend"
	"shopping-assistant-api/infrastructure/cache/disk"
	"shopping-assistant-api/infrastructure/cache/memory"
	"shopping-assistant-api/infrastructure/cache/redis"
	"shopping-assistant-api/infrastructure/cache/sqlite"
	stdhttp "shopping-assistant-api/infrastructure/http/standard"
	"shopping-assistant-api/infrastructure/logger/structured"
	"shopping-assistant-api/infrastructure/scraper/marketplace"
	"shopping-assistant-api/infrastructure/scraper/reddit"
	"shopping-assistant-api/pkg/config"
)

// output is the JSON document printed for a successful run.
type output struct {
	Recommendations []domain.Recommendation `json:"recommendations,omitempty"`
	Alternatives    *domain.Alternatives    `json:"alternatives,omitempty"`
}

func main() {
	var (
		productsPath = flag.String("products", "", "path to a JSON file of products (required)")
		budget       = flag.Float64("budget", 0, "budget in rupees (required)")
		preferences  = flag.String("preferences", "", "comma-separated preferences, most important first")
		logLevel     = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	if *productsPath == "" {
		fmt.Fprintln(os.Stderr, "usage: assistant -products products.json -budget 50000 [-preferences gaming,lightweight]")
		os.Exit(2)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.New(*logLevel)
	logger.Info("Starting shopping assistant", map[string]interface{}{
		"cache_type": cfg.Cache.Type,
		"budget":     *budget,
	})

	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	cache := buildCache(cfg, cacheTTL, logger)

	httpClient := stdhttp.New(time.Duration(cfg.Scraper.RequestTimeout)*time.Second, cfg.Scraper.UserAgent)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	marketplaceSource := marketplace.New(httpClient, logger)
	forumSource := reddit.New(cfg.Scraper.Subreddits, cfg.Scraper.UserAgent,
		time.Duration(cfg.Scraper.RequestTimeout)*time.Second)

	enricher := enrichment.New(deps, marketplaceSource, forumSource, cfg.Enrichment, cacheTTL)
	engine := recommend.New(analyzer.New(cfg.Analysis, logger), cfg.Analysis, logger)

	products, err := loadProducts(*productsPath)
	if err != nil {
		log.Fatalf("Failed to load products: %v", err)
	}

	prefs := splitPreferences(*preferences)
	ctx := context.Background()

	enriched := enricher.Enrich(ctx, domain.Normalize(products))

	recommendations, err := engine.Recommend(enriched, *budget, prefs)
	switch {
	case err == nil:
		printJSON(output{Recommendations: recommendations})
	case apperrors.IsNoResults(err):
		logger.Warn("No direct matches, generating alternatives", map[string]interface{}{
			"reason": err.Error(),
		})
		alternatives := engine.Alternatives(enriched, *budget, prefs)
		printJSON(output{Alternatives: &alternatives})
	default:
		log.Fatalf("Recommendation failed: %v", err)
	}
}

// buildCache creates the configured cache backend, falling back to memory
// when the backend cannot be reached.
func buildCache(cfg *config.Config, defaultTTL time.Duration, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.New(cfg.Cache.Redis, defaultTTL)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.New(defaultTTL)
		}
		logger.Info("Using Redis cache", map[string]interface{}{"address": cfg.Cache.Redis.Address})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.New(cfg.Cache.SQLitePath, defaultTTL)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.New(defaultTTL)
		}
		logger.Info("Using SQLite cache", map[string]interface{}{"path": cfg.Cache.SQLitePath})
		return sqliteCache
	case "memory":
		logger.Info("Using memory cache", nil)
		return memory.New(defaultTTL)
	default:
		diskCache, err := disk.New(cfg.Cache.Dir, defaultTTL)
		if err != nil {
			logger.Error("Failed to create disk cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.New(defaultTTL)
		}
		logger.Info("Using disk cache", map[string]interface{}{"dir": cfg.Cache.Dir})
		return diskCache
	}
}

func loadProducts(path string) ([]domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("invalid product JSON: %w", err)
	}
	return products, nil
}

func splitPreferences(raw string) []string {
	if raw == "" {
		return nil
	}

	var prefs []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			prefs = append(prefs, p)
		}
	}
	return prefs
}

func printJSON(out output) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
}
