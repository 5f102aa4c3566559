package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/news-comments-api/internal/service"
	"github.com/rs/zerolog"
)

// ArticleHandler handles the article feed proxy endpoint
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// Browse handles GET /api/articles?limit=&offset=
//
// The feed itself is external and read-only; this endpoint passes limit and
// offset through and serves whatever page the upstream returns.
func (h *ArticleHandler) Browse(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return
	}
	offset, ok := queryInt(c, "offset", 0)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be an integer"})
		return
	}

	page, err := h.services.Feed.Browse(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.Error().Err(err).Int("limit", limit).Int("offset", offset).Msg("Failed to fetch articles")
		c.JSON(http.StatusBadGateway, gin.H{"error": "error fetching articles"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// queryInt parses an optional integer query parameter
func queryInt(c *gin.Context, name string, defaultValue int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
