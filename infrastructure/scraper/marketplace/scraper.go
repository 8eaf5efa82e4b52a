// ABOUTME: Marketplace review scraper for Amazon and Flipkart listing pages
// ABOUTME: Parses review blocks with goquery, selectors track the live sites

package marketplace

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"shopping-assistant-api/core/domain"
	"shopping-assistant-api/core/interfaces"
)

// maxReviews caps reviews taken from one listing page.
const maxReviews = 10

var amazonProductID = regexp.MustCompile(`/dp/([A-Z0-9]+)`)

// Scraper implements the MarketplaceReviewSource interface.
type Scraper struct {
	http   interfaces.HTTPClient
	logger interfaces.Logger
}

// New creates a marketplace scraper using the given HTTP client.
func New(httpClient interfaces.HTTPClient, logger interfaces.Logger) *Scraper {
	return &Scraper{http: httpClient, logger: logger}
}

// ScrapeReviews fetches the review page for a product and extracts up to ten
// reviews. An unrecognized platform is an error; a readable page with no
// reviews is an empty result.
func (s *Scraper) ScrapeReviews(ctx context.Context, productURL, platform string) ([]domain.Review, error) {
	switch strings.ToLower(platform) {
	case "amazon":
		return s.scrapeAmazon(ctx, productURL)
	case "flipkart":
		return s.scrapeFlipkart(ctx, productURL)
	default:
		return nil, fmt.Errorf("unsupported platform: %s", platform)
	}
}

func (s *Scraper) scrapeAmazon(ctx context.Context, productURL string) ([]domain.Review, error) {
	match := amazonProductID.FindStringSubmatch(productURL)
	if match == nil {
		s.warn("Could not extract product ID from URL", map[string]interface{}{"url": productURL})
		return nil, nil
	}

	reviewsURL := "https://www.amazon.in/product-reviews/" + match[1]
	doc, err := s.fetch(ctx, reviewsURL)
	if err != nil {
		return nil, err
	}

	var reviews []domain.Review
	doc.Find(`div[data-hook="review"]`).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if len(reviews) >= maxReviews {
			return false
		}

		var rating float64
		ratingText := strings.TrimSpace(sel.Find(`i[data-hook="review-star-rating"] span`).First().Text())
		if ratingText != "" {
			parts := strings.SplitN(ratingText, " out of ", 2)
			if v, err := strconv.ParseFloat(parts[0], 64); err == nil {
				rating = v
			}
		}

		reviews = append(reviews, domain.Review{
			Rating: rating,
			Title:  strings.TrimSpace(sel.Find(`a[data-hook="review-title"] span`).First().Text()),
			Text:   strings.TrimSpace(sel.Find(`span[data-hook="review-body"] span`).First().Text()),
			Date:   strings.TrimSpace(sel.Find(`span[data-hook="review-date"]`).First().Text()),
			Source: "amazon",
		})
		return true
	})

	return reviews, nil
}

func (s *Scraper) scrapeFlipkart(ctx context.Context, productURL string) ([]domain.Review, error) {
	reviewsURL := productURL + "&marketplace=FLIPKART#rating-review"
	doc, err := s.fetch(ctx, reviewsURL)
	if err != nil {
		return nil, err
	}

	var reviews []domain.Review
	// Flipkart rotates its class names; try the known container variants.
	doc.Find("div._27M-vq, div.t-ZTKy").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if len(reviews) >= maxReviews {
			return false
		}

		var rating float64
		if v, err := strconv.ParseFloat(strings.TrimSpace(sel.Find("div._3LWZlK").First().Text()), 64); err == nil {
			rating = v
		}

		title := strings.TrimSpace(sel.Find("p._2-N8zT").First().Text())
		text := strings.TrimSpace(sel.Find("div.t-ZTKy").First().Text())
		if text == "" {
			text = strings.TrimSpace(sel.Text())
		}
		date := strings.TrimSpace(sel.Find("p._2sc7ZR").First().Text())

		if rating == 0 && title == "" && text == "" {
			return true
		}

		reviews = append(reviews, domain.Review{
			Rating: rating,
			Title:  title,
			Text:   text,
			Date:   date,
			Source: "flipkart",
		})
		return true
	})

	return reviews, nil
}

func (s *Scraper) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	resp, err := s.http.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode(), url)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc, nil
}

func (s *Scraper) warn(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, fields)
	}
}
