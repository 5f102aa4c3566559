package service

import (
	"context"

	"github.com/news-comments-api/internal/config"
	"github.com/news-comments-api/internal/models"
	"github.com/news-comments-api/internal/repository"
	"github.com/rs/zerolog"
)

// CommentService defines the comment submission workflow and read views
type CommentService interface {
	Submit(ctx context.Context, req *models.SubmitCommentRequest) (*models.SubmissionResult, error)
	ListByArticle(ctx context.Context, articleID string) ([]models.ArticleComment, error)
}

// MetricsService defines the engagement metrics view
type MetricsService interface {
	Snapshot(ctx context.Context) (*models.EngagementMetrics, error)
}

// FeedService defines paginated access to the upstream article feed
type FeedService interface {
	Browse(ctx context.Context, limit, offset int) (*models.ArticlePage, error)
}

// UserService defines read access to the user directory
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
}

// ArticlePager is the part of the feed client the feed service depends on
type ArticlePager interface {
	Page(ctx context.Context, limit, offset int) (*models.ArticlePage, error)
}

// Services holds all service interfaces
type Services struct {
	Comment CommentService
	Metrics MetricsService
	Feed    FeedService
	User    UserService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, pager ArticlePager, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Comment: newCommentService(repos.User, repos.Comment, log),
		Metrics: newMetricsService(repos.Metrics, log),
		Feed:    newFeedService(pager, &cfg.Feed, log),
		User:    newUserService(repos.User, log),
	}
}
