// ABOUTME: Tests for the Reddit forum source against a local test server

package reddit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const searchResponse = `{
	"data": {
		"children": [
			{
				"data": {
					"title": "ASUS TUF F15 review after 6 months",
					"selftext": "Bought this laptop for gaming and it has held up great.",
					"permalink": "/r/gadgets/comments/abc123/asus_tuf_f15_review/",
					"author": "laptop_fan",
					"created_utc": 1767225600
				}
			},
			{
				"data": {
					"title": "Weekly deals thread",
					"selftext": "",
					"permalink": "/r/gadgets/comments/def456/weekly_deals/",
					"author": "deals_bot",
					"created_utc": 1767312000
				}
			}
		]
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := New([]string{"gadgets", "tech"}, "test-agent", 5*time.Second)
	c.baseURL = server.URL
	return c
}

func TestClient_Name(t *testing.T) {
	c := New(nil, "", time.Second)
	if c.Name() != "Reddit" {
		t.Errorf("Name = %q", c.Name())
	}
}

func TestClient_Search(t *testing.T) {
	var requested *http.Request
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requested = r
		w.Write([]byte(searchResponse))
	})

	posts, err := c.Search(context.Background(), "ASUS TUF F15", 10)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if !strings.HasPrefix(requested.URL.Path, "/r/gadgets+tech/search.json") {
		t.Errorf("request path = %q", requested.URL.Path)
	}
	q := requested.URL.Query()
	if q.Get("q") != "ASUS TUF F15 review" {
		t.Errorf("query = %q", q.Get("q"))
	}
	if q.Get("restrict_sr") != "1" {
		t.Errorf("restrict_sr = %q", q.Get("restrict_sr"))
	}
	if requested.Header.Get("User-Agent") != "test-agent" {
		t.Errorf("User-Agent = %q", requested.Header.Get("User-Agent"))
	}

	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}

	p := posts[0]
	if p.Title != "ASUS TUF F15 review after 6 months" {
		t.Errorf("title = %q", p.Title)
	}
	if p.Author != "laptop_fan" {
		t.Errorf("author = %q", p.Author)
	}
	if !strings.HasSuffix(p.URL, "/r/gadgets/comments/abc123/asus_tuf_f15_review/") {
		t.Errorf("url = %q", p.URL)
	}
	if p.Created.Unix() != 1767225600 {
		t.Errorf("created = %v", p.Created)
	}
}

func TestClient_SearchHonorsLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchResponse))
	})

	posts, err := c.Search(context.Background(), "anything", 1)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(posts) != 1 {
		t.Errorf("got %d posts, want 1", len(posts))
	}
}

func TestClient_SearchEmptyResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"children": []}}`))
	})

	posts, err := c.Search(context.Background(), "obscure product", 10)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("got %d posts, want 0", len(posts))
	}
}

func TestClient_SearchBadStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	if _, err := c.Search(context.Background(), "anything", 10); err == nil {
		t.Error("want error for a non-200 response")
	}
}
