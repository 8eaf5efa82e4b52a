// ABOUTME: Reddit forum source using the public JSON search endpoint
// ABOUTME: Searches a fixed set of subreddits for posts discussing a product

package reddit

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"shopping-assistant-api/core/domain"
)

const defaultBaseURL = "https://www.reddit.com"

// Client implements the ForumSource interface against Reddit's JSON API.
type Client struct {
	http       *retryablehttp.Client
	baseURL    string
	subreddits []string
	userAgent  string
}

// New creates a Reddit client searching the given subreddits.
func New(subreddits []string, userAgent string, timeout time.Duration) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = log.New(io.Discard, "", 0)
	retryClient.RetryMax = 3
	retryClient.HTTPClient.Timeout = timeout

	return &Client{
		http:       retryClient,
		baseURL:    defaultBaseURL,
		subreddits: subreddits,
		userAgent:  userAgent,
	}
}

// Name identifies this source on the reviews it produces.
func (c *Client) Name() string {
	return "Reddit"
}

// Search queries the combined subreddits for posts about the product and
// returns up to limit raw posts. Relevance filtering happens downstream.
func (c *Client) Search(ctx context.Context, productName string, limit int) ([]domain.ForumPost, error) {
	if limit <= 0 {
		limit = 10
	}

	searchURL := fmt.Sprintf("%s/r/%s/search.json?q=%s&restrict_sr=1&sort=relevance&limit=%d",
		c.baseURL,
		strings.Join(c.subreddits, "+"),
		url.QueryEscape(productName+" review"),
		limit)

	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reddit search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("reddit search returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read reddit response: %w", err)
	}

	var posts []domain.ForumPost
	for _, child := range gjson.GetBytes(body, "data.children").Array() {
		data := child.Get("data")

		post := domain.ForumPost{
			Title:   data.Get("title").String(),
			Body:    data.Get("selftext").String(),
			Author:  data.Get("author").String(),
			Created: time.Unix(int64(data.Get("created_utc").Float()), 0),
		}
		if permalink := data.Get("permalink").String(); permalink != "" {
			post.URL = defaultBaseURL + permalink
		}

		posts = append(posts, post)
		if len(posts) >= limit {
			break
		}
	}

	return posts, nil
}
