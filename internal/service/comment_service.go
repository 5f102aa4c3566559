package service

import (
	"context"
	"fmt"

	"github.com/news-comments-api/internal/models"
	"github.com/news-comments-api/internal/repository"
	"github.com/news-comments-api/internal/validation"
	"github.com/rs/zerolog"
)

// commentService orchestrates the submission workflow:
// validate, resolve user, append comment, snapshot the article's list.
// Single pass, no retries; any failure after validation aborts the workflow.
type commentService struct {
	users    repository.UserRepository
	comments repository.CommentRepository
	log      zerolog.Logger
}

func newCommentService(users repository.UserRepository, comments repository.CommentRepository, log zerolog.Logger) CommentService {
	return &commentService{
		users:    users,
		comments: comments,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// Submit runs the full submission workflow and returns the persisted comment
// together with a post-append snapshot of the article's comment list. The
// snapshot is best-effort consistent: it may already include comments from
// requests committing concurrently.
func (s *commentService) Submit(ctx context.Context, req *models.SubmitCommentRequest) (*models.SubmissionResult, error) {
	// Validation failures must leave no side effects, so it runs before any
	// storage is touched.
	if err := validation.ValidateSubmission(req); err != nil {
		return nil, err
	}

	user, err := s.users.Resolve(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("resolving user: %w", err)
	}

	comment, err := s.comments.Create(ctx, user.ID, req.ArticleID.String(), req.Body)
	if err != nil {
		// The user row (possibly just created) stays; a commenter with zero
		// comments is harmless and resolve is idempotent on retry.
		s.log.Warn().
			Err(err).
			Int64("user_id", user.ID).
			Str("article_id", req.ArticleID.String()).
			Msg("Comment append failed after user resolve")
		return nil, fmt.Errorf("appending comment: %w", err)
	}

	snapshot, err := s.comments.ListByArticle(ctx, req.ArticleID.String())
	if err != nil {
		return nil, fmt.Errorf("reading comment snapshot: %w", err)
	}

	s.log.Info().
		Int64("comment_id", comment.ID).
		Int64("user_id", user.ID).
		Str("article_id", comment.ArticleID).
		Msg("Comment submitted")

	return &models.SubmissionResult{
		NewComment: comment,
		Comments:   snapshot,
	}, nil
}

// ListByArticle returns an article's full comment list, oldest first.
// An article nobody commented on is an empty list, not an error.
func (s *commentService) ListByArticle(ctx context.Context, articleID string) ([]models.ArticleComment, error) {
	return s.comments.ListByArticle(ctx, articleID)
}
