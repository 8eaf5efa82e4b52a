// ABOUTME: Review enrichment service attaching marketplace and forum reviews to products
// ABOUTME: Runs a bounded worker pool and is best effort, enrichment never fails a request

package enrichment

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/errgroup"

	"shopping-assistant-api/core/domain"
	"shopping-assistant-api/core/interfaces"
	"shopping-assistant-api/pkg/cachekey"
	"shopping-assistant-api/pkg/config"
)

const (
	maxReviewTitleLen = 100
	maxReviewTextLen  = 500
	minPostBodyLen    = 50
)

// Service attaches reviews to a shortlist of products. Products beyond the
// shortlist pass through untouched; input order and length are preserved.
type Service struct {
	deps        interfaces.Dependencies
	marketplace interfaces.MarketplaceReviewSource
	forum       interfaces.ForumSource
	cfg         config.EnrichmentConfig
	cacheTTL    time.Duration
}

// New creates an enrichment service with the given sources and settings.
func New(deps interfaces.Dependencies, marketplace interfaces.MarketplaceReviewSource, forum interfaces.ForumSource, cfg config.EnrichmentConfig, cacheTTL time.Duration) *Service {
	return &Service{
		deps:        deps,
		marketplace: marketplace,
		forum:       forum,
		cfg:         cfg,
		cacheTTL:    cacheTTL,
	}
}

// Enrich attaches marketplace and forum reviews to the first MaxProducts
// products, running Workers enrichments concurrently. Every product comes
// back in its input position; failures degrade to synthetic reviews rather
// than errors.
func (s *Service) Enrich(ctx context.Context, products []domain.Product) []domain.EnrichedProduct {
	results := make([]domain.EnrichedProduct, len(products))
	for i, p := range products {
		results[i] = domain.EnrichedProduct{Product: p}
	}

	limit := s.cfg.MaxProducts
	if limit <= 0 || limit > len(products) {
		limit = len(products)
	}

	workers := s.cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)

	for i := 0; i < limit; i++ {
		i := i
		g.Go(func() error {
			results[i] = s.enrichOne(ctx, products[i])
			return nil
		})
	}

	// Workers only write their own slot and never return errors.
	_ = g.Wait()

	s.info("Product enrichment complete", map[string]interface{}{
		"total":    len(products),
		"enriched": limit,
	})
	return results
}

func (s *Service) enrichOne(ctx context.Context, p domain.Product) domain.EnrichedProduct {
	out := domain.EnrichedProduct{Product: p}
	out.Reviews = s.marketplaceReviews(ctx, p)
	if s.cfg.IncludeForumReviews {
		out.ForumReviews = s.forumReviews(ctx, p)
	}
	return out
}

func (s *Service) marketplaceReviews(ctx context.Context, p domain.Product) []domain.Review {
	key := cachekey.Fingerprint(p.Platform, "reviews_"+p.URL)

	if cached := s.cachedReviews(ctx, key); cached != nil {
		s.info("Using cached reviews", map[string]interface{}{"product": p.Name})
		return cached
	}

	reviews, err := s.marketplace.ScrapeReviews(ctx, p.URL, p.Platform)
	if err != nil {
		s.warn("Review scraping failed, generating synthetic reviews", map[string]interface{}{
			"product": p.Name,
			"error":   err.Error(),
		})
		reviews = SyntheticMarketplaceReviews(p)
	} else if len(reviews) == 0 {
		s.info("No reviews found, generating synthetic reviews", map[string]interface{}{"product": p.Name})
		reviews = SyntheticMarketplaceReviews(p)
	}

	s.storeReviews(ctx, key, reviews)
	return reviews
}

func (s *Service) forumReviews(ctx context.Context, p domain.Product) []domain.Review {
	forumName := s.forum.Name()
	key := cachekey.Fingerprint(forumName, "forum_reviews_"+p.Name)

	if cached := s.cachedReviews(ctx, key); cached != nil {
		s.info("Using cached forum reviews", map[string]interface{}{"product": p.Name})
		return cached
	}

	var reviews []domain.Review
	posts, err := s.forum.Search(ctx, p.Name, s.cfg.MaxForumReviews)
	if err != nil {
		s.warn("Forum search failed, generating synthetic reviews", map[string]interface{}{
			"product": p.Name,
			"forum":   forumName,
			"error":   err.Error(),
		})
	} else {
		reviews = s.postsToReviews(posts, p.Name)
	}

	if len(reviews) == 0 {
		reviews = SyntheticForumReviews(p.Name)
	}

	if s.cfg.MaxForumReviews > 0 && len(reviews) > s.cfg.MaxForumReviews {
		reviews = reviews[:s.cfg.MaxForumReviews]
	}

	s.storeReviews(ctx, key, reviews)
	return reviews
}

// postsToReviews converts raw forum posts into estimated reviews, keeping
// only substantial posts that actually mention the product.
func (s *Service) postsToReviews(posts []domain.ForumPost, productName string) []domain.Review {
	source := s.forum.Name()

	reviews := make([]domain.Review, 0, len(posts))
	for _, post := range posts {
		if len(post.Body) < minPostBodyLen {
			continue
		}
		if !Relevant(post.Title, productName) && !Relevant(post.Body, productName) {
			continue
		}

		_, rating := Sentiment(post.Body)

		title := post.Title
		if len(title) > maxReviewTitleLen {
			title = title[:maxReviewTitleLen]
		}
		text := post.Body
		if len(text) > maxReviewTextLen {
			text = text[:maxReviewTextLen]
		}
		author := post.Author
		if author == "" {
			author = "[deleted]"
		}

		reviews = append(reviews, domain.Review{
			Rating: rating,
			Title:  title,
			Text:   text,
			Date:   post.Created.Format(reviewDateLayout),
			Source: source,
			URL:    post.URL,
			Author: author,
		})
	}
	return reviews
}

func (s *Service) cachedReviews(ctx context.Context, key string) []domain.Review {
	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil {
		s.warn("Cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
		return nil
	}
	if data == nil {
		return nil
	}

	var reviews []domain.Review
	if err := json.Unmarshal(data, &reviews); err != nil {
		s.warn("Discarding malformed cache entry", map[string]interface{}{"key": key, "error": err.Error()})
		return nil
	}
	return reviews
}

// storeReviews writes through to the cache. Write failures are logged and
// swallowed, a dead cache must not break enrichment.
func (s *Service) storeReviews(ctx context.Context, key string, reviews []domain.Review) {
	data, err := json.Marshal(reviews)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.warn("Cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

func (s *Service) info(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) warn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}
