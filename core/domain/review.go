// ABOUTME: Review and forum post domain models
// ABOUTME: Reviews are immutable once created, whatever their source

package domain

import "time"

// Review represents one customer review, scraped from a marketplace,
// estimated from a forum discussion, or synthesized when no source is
// available. Synthetic reviews carry no distinguishing flag.
type Review struct {
	// Rating is a 1-5 star value, possibly fractional; 0 when the source
	// exposed no rating
	Rating float64 `json:"rating,omitempty"`

	// Title is the review headline
	Title string `json:"title,omitempty"`

	// Text is the review body
	Text string `json:"text,omitempty"`

	// Date is the review date as displayed by the source (e.g. "March 12, 2024")
	Date string `json:"date,omitempty"`

	// Source names where the review came from (marketplace or forum name)
	Source string `json:"source,omitempty"`

	// URL links to the review when the source exposes one
	URL string `json:"url,omitempty"`

	// Author is the reviewer's display name
	Author string `json:"author,omitempty"`
}

// ForumPost is one raw search hit returned by a forum source, before the
// enrichment stage filters it for relevance and estimates a rating.
type ForumPost struct {
	// Title is the post headline
	Title string `json:"title"`

	// Body is the post text
	Body string `json:"body"`

	// URL links to the post
	URL string `json:"url,omitempty"`

	// Author is the posting user
	Author string `json:"author,omitempty"`

	// Created is when the post was published
	Created time.Time `json:"created,omitempty"`
}
