// Package core contains the business logic for the Shopping Assistant API.
// It is designed to be framework-agnostic and can be used independently
// of any front end or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Product, Review, Recommendation, etc.)
// - analyzer: Budget filtering, preference/review/price scoring and ranking
// - enrichment: Concurrent review enrichment with cached and synthetic sources
// - recommend: Top-K recommendation generation and fallback alternatives
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, sources)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "shopping-assistant-api/core/analyzer"
//	    "shopping-assistant-api/core/interfaces"
//	    "shopping-assistant-api/core/recommend"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create services
//	a := analyzer.New(cfg.Analysis, deps.Logger)
//	engine := recommend.NewEngine(a, cfg.Analysis, deps.Logger)
//
//	// Generate recommendations
//	recs, err := engine.Recommend(products, 50000, []string{"gaming"})
package core
