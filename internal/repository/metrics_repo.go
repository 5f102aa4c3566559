package repository

import (
	"context"

	"github.com/news-comments-api/internal/database"
	"github.com/news-comments-api/internal/models"
)

// metricsRepo is the concrete implementation of MetricsRepository
type metricsRepo struct {
	db *database.DB
}

// NewMetricsRepo creates a new metrics repository
func NewMetricsRepo(db *database.DB) MetricsRepository {
	return &metricsRepo{db: db}
}

// TopCommenters returns the n usernames with the most comments across all
// articles. Ties break on username ascending (case-insensitive) so the
// leaderboard is deterministic.
func (r *metricsRepo) TopCommenters(ctx context.Context, n int) ([]models.TopCommenter, error) {
	query := `
		SELECT users.username, COUNT(*) AS comment_count
		FROM comments
		JOIN users ON users.id = comments.user_id
		GROUP BY users.username
		ORDER BY comment_count DESC, LOWER(users.username) ASC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	commenters := make([]models.TopCommenter, 0, n)
	for rows.Next() {
		var tc models.TopCommenter
		if err := rows.Scan(&tc.Username, &tc.CommentCount); err != nil {
			return nil, err
		}
		commenters = append(commenters, tc)
	}
	return commenters, rows.Err()
}

// AverageCommentsPerDay returns the mean of per-calendar-date comment counts
// over dates that have at least one comment, and 0 for an empty store.
func (r *metricsRepo) AverageCommentsPerDay(ctx context.Context) (float64, error) {
	query := `
		SELECT COALESCE(AVG(comment_count), 0)
		FROM (
			SELECT DATE(created_at) AS comment_date, COUNT(*) AS comment_count
			FROM comments
			GROUP BY comment_date
		) AS daily_counts
	`

	var avg float64
	err := r.db.QueryRowContext(ctx, query).Scan(&avg)
	return avg, err
}
