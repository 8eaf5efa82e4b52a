// ABOUTME: Product domain models for raw, enriched and scored listings
// ABOUTME: Each pipeline stage layers a new type over the previous one

package domain

// Product represents one raw listing produced by the external collector.
type Product struct {
	// Name is the listing title as shown on the marketplace
	Name string `json:"name"`

	// URL points to the product page
	URL string `json:"url,omitempty"`

	// Price is the numeric price; a listing without a positive price
	// cannot be ranked and is dropped at the pipeline boundary
	Price float64 `json:"price"`

	// PriceDisplay is the price as rendered by the source (e.g. "₹49,990")
	PriceDisplay string `json:"price_text,omitempty"`

	// Rating is the average star rating (0-5) when the source exposes one
	Rating *float64 `json:"rating,omitempty"`

	// ReviewCount is the number of reviews behind Rating
	ReviewCount int `json:"review_count"`

	// Features are the listed bullet-point features, in source order
	Features []string `json:"features,omitempty"`

	// ImageURL is the listing thumbnail
	ImageURL string `json:"image_url,omitempty"`

	// Platform tags the source marketplace (e.g. "amazon", "flipkart")
	Platform string `json:"platform"`
}

// IsValid reports whether the listing carries the fields the pipeline
// requires before it may enter the core.
func (p *Product) IsValid() bool {
	if p.Name == "" {
		return false
	}

	if p.Price <= 0 {
		return false
	}

	return true
}

// Normalize drops raw records missing a name or a positive price.
// Order of the surviving records is preserved.
func Normalize(products []Product) []Product {
	normalized := make([]Product, 0, len(products))
	for _, p := range products {
		if p.IsValid() {
			normalized = append(normalized, p)
		}
	}
	return normalized
}

// EnrichedProduct layers review data over a raw listing. It is produced by
// the enrichment stage; empty review lists are a legal outcome.
type EnrichedProduct struct {
	Product

	// Reviews are marketplace reviews for the listing
	Reviews []Review `json:"reviews,omitempty"`

	// ForumReviews are estimated reviews derived from forum discussions,
	// attached only when forum enrichment is enabled
	ForumReviews []Review `json:"forum_reviews,omitempty"`
}

// ScoredProduct layers analysis results over an enriched listing.
type ScoredProduct struct {
	EnrichedProduct

	// MatchedPreferences lists the user preferences this product satisfied
	MatchedPreferences []string `json:"matched_preferences"`

	// PreferenceScore is +1 per exact preference match, +0.5 per partial
	PreferenceScore float64 `json:"preference_score"`

	// ReviewScore is the rating plus a capped volume bonus
	ReviewScore float64 `json:"review_score"`

	// PriceScore rewards cheaper products and penalizes over-budget ones
	PriceScore float64 `json:"price_score"`

	// CombinedScore is the weighted composite used for ranking
	CombinedScore float64 `json:"combined_score"`

	// OverBudget marks products above budget but within the flexibility band
	OverBudget bool `json:"over_budget,omitempty"`
}
