package repository

import (
	"context"

	"github.com/news-comments-api/internal/database"
	"github.com/news-comments-api/internal/models"
)

// UserRepository is the user directory: display names resolved to stable ids
type UserRepository interface {
	Resolve(ctx context.Context, username string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository owns the comments table: append and per-article reads
type CommentRepository interface {
	Create(ctx context.Context, userID int64, articleID, body string) (*models.Comment, error)
	ListByArticle(ctx context.Context, articleID string) ([]models.ArticleComment, error)
	Count(ctx context.Context) (int, error)
}

// MetricsRepository computes cross-article engagement aggregates
type MetricsRepository interface {
	TopCommenters(ctx context.Context, n int) ([]models.TopCommenter, error)
	AverageCommentsPerDay(ctx context.Context) (float64, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User    UserRepository
	Comment CommentRepository
	Metrics MetricsRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepo(db),
		Comment: NewCommentRepo(db),
		Metrics: NewMetricsRepo(db),
	}
}
