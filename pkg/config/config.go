// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Built once at startup and passed by value into component constructors

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration. It is immutable after loading;
// no component reads ambient configuration.
type Config struct {
	// Analysis contains scoring and ranking settings
	Analysis AnalysisConfig

	// Enrichment contains review enrichment settings
	Enrichment EnrichmentConfig

	// Cache contains cache backend configuration
	Cache CacheConfig

	// Scraper contains settings for the external review sources
	Scraper ScraperConfig
}

// AnalysisConfig holds scoring and ranking settings
type AnalysisConfig struct {
	// BudgetFlexibility is the fraction above budget still considered (0.1 = 10%)
	BudgetFlexibility float64

	// MinReviews is the review count below which ratings carry no weight
	MinReviews int

	// TopRecommendations is the number of recommendations to return
	TopRecommendations int
}

// EnrichmentConfig holds review enrichment settings
type EnrichmentConfig struct {
	// MaxProducts is the shortlist size eligible for review enrichment
	MaxProducts int

	// Workers is the number of products enriched concurrently
	Workers int

	// IncludeForumReviews enables the forum enrichment step
	IncludeForumReviews bool

	// MaxForumReviews caps forum reviews attached per product
	MaxForumReviews int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (disk/memory/sqlite/redis)
	Type string

	// Dir is the directory used by the disk backend
	Dir string

	// TTLSeconds is the entry lifetime applied on read
	TTLSeconds int

	// SQLitePath is the database file used by the sqlite backend
	SQLitePath string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// ScraperConfig holds settings for the external review sources
type ScraperConfig struct {
	// RequestTimeout is the per-request timeout in seconds
	RequestTimeout int

	// UserAgent is sent on outbound scrape requests
	UserAgent string

	// Subreddits are searched for forum reviews
	Subreddits []string
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var defaultSubreddits = []string{
	"gadgets", "tech", "reviews", "BuyItForLife", "GoodValue",
	"ProductReviews", "electronics",
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Analysis: AnalysisConfig{
			BudgetFlexibility:  getEnvAsFloatOrDefault("BUDGET_FLEXIBILITY", 0.1),
			MinReviews:         getEnvAsIntOrDefault("MIN_REVIEWS", 10),
			TopRecommendations: getEnvAsIntOrDefault("TOP_RECOMMENDATIONS", 5),
		},
		Enrichment: EnrichmentConfig{
			MaxProducts:         getEnvAsIntOrDefault("MAX_PRODUCTS_TO_ENRICH", 5),
			Workers:             getEnvAsIntOrDefault("ENRICH_WORKERS", 3),
			IncludeForumReviews: getEnvAsBoolOrDefault("INCLUDE_FORUM_REVIEWS", true),
			MaxForumReviews:     getEnvAsIntOrDefault("MAX_FORUM_REVIEWS", 10),
		},
		Cache: CacheConfig{
			Type:       getEnvOrDefault("CACHE_TYPE", "disk"),
			Dir:        getEnvOrDefault("CACHE_DIR", "./cache"),
			TTLSeconds: getEnvAsIntOrDefault("CACHE_EXPIRY", 86400),
			SQLitePath: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Scraper: ScraperConfig{
			RequestTimeout: getEnvAsIntOrDefault("REQUEST_TIMEOUT", 10),
			UserAgent:      getEnvOrDefault("SCRAPER_USER_AGENT", defaultUserAgent),
			Subreddits:     getEnvAsListOrDefault("REDDIT_SUBREDDITS", defaultSubreddits),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault returns a comma-separated environment variable as a
// slice or a default
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		list := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				list = append(list, p)
			}
		}
		if len(list) > 0 {
			return list
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Analysis.BudgetFlexibility < 0 {
		return errors.New("budget flexibility cannot be negative")
	}

	if c.Analysis.MinReviews < 0 {
		return errors.New("minimum review count cannot be negative")
	}

	if c.Analysis.TopRecommendations < 1 {
		return errors.New("top recommendation count must be at least 1")
	}

	if c.Enrichment.MaxProducts < 1 {
		return errors.New("max products to enrich must be at least 1")
	}

	if c.Enrichment.Workers < 1 {
		return errors.New("enrichment worker count must be at least 1")
	}

	if c.Enrichment.MaxForumReviews < 0 {
		return errors.New("max forum reviews cannot be negative")
	}

	switch c.Cache.Type {
	case "disk", "memory", "sqlite", "redis":
	default:
		return errors.New("cache type must be 'disk', 'memory', 'sqlite' or 'redis'")
	}

	if c.Cache.TTLSeconds < 1 {
		return errors.New("cache expiry must be at least 1 second")
	}

	if c.Cache.Type == "disk" && c.Cache.Dir == "" {
		return errors.New("cache directory cannot be empty when using disk cache")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Scraper.RequestTimeout < 1 {
		return errors.New("request timeout must be at least 1 second")
	}

	return nil
}
