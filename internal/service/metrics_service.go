package service

import (
	"context"
	"fmt"

	"github.com/news-comments-api/internal/models"
	"github.com/news-comments-api/internal/repository"
	"github.com/rs/zerolog"
)

// metricsService computes the engagement metrics view on demand
type metricsService struct {
	metrics repository.MetricsRepository
	log     zerolog.Logger
}

func newMetricsService(metrics repository.MetricsRepository, log zerolog.Logger) MetricsService {
	return &metricsService{
		metrics: metrics,
		log:     log.With().Str("service", "metrics").Logger(),
	}
}

// Snapshot returns the top-3 commenters and the average comments per day.
// An empty comment store yields an empty leaderboard and a 0 average.
func (s *metricsService) Snapshot(ctx context.Context) (*models.EngagementMetrics, error) {
	top, err := s.metrics.TopCommenters(ctx, models.DefaultTopCommenters)
	if err != nil {
		return nil, fmt.Errorf("computing top commenters: %w", err)
	}

	avg, err := s.metrics.AverageCommentsPerDay(ctx)
	if err != nil {
		return nil, fmt.Errorf("computing average comments per day: %w", err)
	}

	return &models.EngagementMetrics{
		TopCommenters:   top,
		AverageComments: avg,
	}, nil
}
