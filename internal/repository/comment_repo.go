package repository

import (
	"context"

	"github.com/news-comments-api/internal/database"
	"github.com/news-comments-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts one comment and returns the persisted row. The timestamp is
// the database clock (column default), never a client-supplied value, so
// insertion order and created_at order agree within an article.
func (r *commentRepo) Create(ctx context.Context, userID int64, articleID, body string) (*models.Comment, error) {
	query := `
		INSERT INTO comments (user_id, article_id, comment)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, article_id, comment, created_at
	`

	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, userID, articleID, body).Scan(
		&comment.ID, &comment.UserID, &comment.ArticleID, &comment.Body, &comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// ListByArticle returns an article's comments joined to their authors,
// oldest first. Equal timestamps tie-break on insertion id.
func (r *commentRepo) ListByArticle(ctx context.Context, articleID string) ([]models.ArticleComment, error) {
	query := `
		SELECT users.username, comments.comment, comments.created_at
		FROM comments
		JOIN users ON comments.user_id = users.id
		WHERE comments.article_id = $1
		ORDER BY comments.created_at ASC, comments.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Empty, not nil: an article nobody commented on serves as [].
	comments := make([]models.ArticleComment, 0)
	for rows.Next() {
		var c models.ArticleComment
		if err := rows.Scan(&c.Username, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}
