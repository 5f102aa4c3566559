package service

import (
	"context"

	"github.com/news-comments-api/internal/config"
	"github.com/news-comments-api/internal/models"
	"github.com/rs/zerolog"
)

// maxFeedPageSize caps how many articles one request may pull upstream
const maxFeedPageSize = 100

// feedService validates pagination parameters and delegates to the feed client
type feedService struct {
	pager ArticlePager
	cfg   *config.FeedConfig
	log   zerolog.Logger
}

func newFeedService(pager ArticlePager, cfg *config.FeedConfig, log zerolog.Logger) FeedService {
	return &feedService{
		pager: pager,
		cfg:   cfg,
		log:   log.With().Str("service", "feed").Logger(),
	}
}

// Browse returns one page of the upstream article feed. A non-positive limit
// falls back to the configured page size; the limit is capped so a single
// request cannot pull an unbounded page upstream.
func (s *feedService) Browse(ctx context.Context, limit, offset int) (*models.ArticlePage, error) {
	if limit <= 0 {
		limit = s.cfg.PageSize
	}
	if limit > maxFeedPageSize {
		limit = maxFeedPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return s.pager.Page(ctx, limit, offset)
}
