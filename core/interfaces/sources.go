// ABOUTME: Contracts for external review sources consumed by the enrichment stage
// ABOUTME: One real implementation and one test fake exist per interface

package interfaces

import (
	"context"

	"shopping-assistant-api/core/domain"
)

// MarketplaceReviewSource scrapes customer reviews from a product's
// marketplace listing page. An empty result with a nil error means the page
// was readable but carried no reviews.
type MarketplaceReviewSource interface {
	ScrapeReviews(ctx context.Context, productURL, platform string) ([]domain.Review, error)
}

// ForumSource searches a discussion forum for posts mentioning a product.
// The enrichment stage filters the posts for relevance and converts them to
// estimated reviews; the source only fetches.
type ForumSource interface {
	// Name identifies the forum (used as the review source tag)
	Name() string

	// Search returns up to limit raw posts matching the product name
	Search(ctx context.Context, productName string, limit int) ([]domain.ForumPost, error)
}
