package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/news-comments-api/internal/config"
	"github.com/news-comments-api/internal/models"
	"github.com/rs/zerolog"
)

// pageKey identifies one cached feed page
type pageKey struct {
	limit  int
	offset int
}

// Client fetches paginated articles from the upstream news feed. Responses
// are cached in-process with a short TTL so infinite-scroll readers hitting
// the same pages don't hammer the upstream, and transient upstream failures
// are retried with exponential backoff.
type Client struct {
	httpClient      *http.Client
	baseURL         string
	retryMaxElapsed time.Duration
	cache           *expirable.LRU[pageKey, *models.ArticlePage]
	log             zerolog.Logger
}

// NewClient creates a feed client from configuration
func NewClient(cfg *config.FeedConfig, log zerolog.Logger) *Client {
	return &Client{
		httpClient:      &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		retryMaxElapsed: cfg.RetryMaxElapsed,
		cache:           expirable.NewLRU[pageKey, *models.ArticlePage](cfg.CacheSize, nil, cfg.CacheTTL),
		log:             log.With().Str("component", "feed").Logger(),
	}
}

// Page returns one page of the upstream feed for the given limit/offset,
// served from cache when a fresh copy exists.
func (c *Client) Page(ctx context.Context, limit, offset int) (*models.ArticlePage, error) {
	key := pageKey{limit: limit, offset: offset}
	if page, ok := c.cache.Get(key); ok {
		c.log.Debug().Int("limit", limit).Int("offset", offset).Msg("Feed page served from cache")
		return page, nil
	}

	page, err := c.fetch(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	c.cache.Add(key, page)
	return page, nil
}

// fetch performs the upstream request with exponential backoff. Network
// errors and 5xx/429 responses retry; any other non-2xx status is permanent.
func (c *Client) fetch(ctx context.Context, limit, offset int) (*models.ArticlePage, error) {
	url := fmt.Sprintf("%s/?limit=%d&offset=%d", c.baseURL, limit, offset)

	var page *models.ArticlePage
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("feed returned status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("feed returned status %d", resp.StatusCode))
		}

		var decoded models.ArticlePage
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode feed response: %w", err))
		}
		page = &decoded
		return nil
	}

	b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(c.retryMaxElapsed),
		backoff.WithInitialInterval(200*time.Millisecond),
		backoff.WithMaxInterval(2*time.Second),
	), 3)

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		c.log.Warn().Err(err).Str("url", url).Msg("Feed fetch failed")
		return nil, fmt.Errorf("fetching feed page: %w", err)
	}

	c.log.Debug().
		Int("limit", limit).
		Int("offset", offset).
		Int("results", len(page.Results)).
		Msg("Feed page fetched")

	return page, nil
}
