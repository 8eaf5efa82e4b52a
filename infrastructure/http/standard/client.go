// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Used by the marketplace scraper for resilient page fetches

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"shopping-assistant-api/core/interfaces"
)

const maxRetries = 3

// Client implements the HTTPClient interface using the standard library.
type Client struct {
	client    *http.Client
	userAgent string
}

// New creates an HTTP client with the specified timeout and User-Agent.
func New(timeout time.Duration, userAgent string) *Client {
	return &Client{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Get performs an HTTP GET request, retrying 5xx responses and transport
// errors with exponential backoff. 4xx responses return without retrying.
func (c *Client) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			resp = nil
			lastErr = err
			continue
		}

		if resp.StatusCode < 500 {
			break
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}
