package models

import (
	"time"
)

// Article is an externally sourced, read-only news item. This service never
// stores articles; the shape mirrors what the upstream feed returns and is
// passed through to clients unchanged.
type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url"`
	NewsSite    string    `json:"news_site"`
	Summary     string    `json:"summary"`
	PublishedAt time.Time `json:"published_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ArticlePage is one page of the upstream feed, keyed by limit/offset.
type ArticlePage struct {
	Count    int       `json:"count"`
	Next     string    `json:"next,omitempty"`
	Previous string    `json:"previous,omitempty"`
	Results  []Article `json:"results"`
}
