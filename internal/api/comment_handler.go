package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-comments-api/internal/models"
	"github.com/news-comments-api/internal/service"
	"github.com/news-comments-api/internal/validation"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// Submit handles POST /api/comments
//
// Request body: {username, comment, articleId}. On success responds 201 with
// the persisted comment and a snapshot of the article's full comment list.
// Validation failures are 400 with field detail; everything else is a 500
// with a generic message so storage error text never reaches the caller.
func (h *CommentHandler) Submit(c *gin.Context) {
	var req models.SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.services.Comment.Submit(c.Request.Context(), &req)
	if err != nil {
		var ve *validation.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "invalid comment submission",
				"fields": ve.Errors,
			})
			return
		}

		h.log.Error().Err(err).Str("article_id", req.ArticleID.String()).Msg("Failed to submit comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error adding comment"})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListByArticle handles GET /api/comments/:articleId
//
// An article nobody commented on (or one that does not exist upstream) is an
// empty list, not a 404.
func (h *CommentHandler) ListByArticle(c *gin.Context) {
	articleID := c.Param("articleId")

	comments, err := h.services.Comment.ListByArticle(c.Request.Context(), articleID)
	if err != nil {
		h.log.Error().Err(err).Str("article_id", articleID).Msg("Failed to fetch comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}
