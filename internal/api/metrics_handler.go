package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-comments-api/internal/service"
	"github.com/rs/zerolog"
)

// MetricsHandler handles the engagement metrics endpoint
type MetricsHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewMetricsHandler creates a new MetricsHandler
func NewMetricsHandler(services *service.Services, log zerolog.Logger) *MetricsHandler {
	return &MetricsHandler{
		services: services,
		log:      log.With().Str("handler", "metrics").Logger(),
	}
}

// GetMetrics handles GET /api/metrics
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	metrics, err := h.services.Metrics.Snapshot(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to compute metrics")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching metrics"})
		return
	}

	c.JSON(http.StatusOK, metrics)
}
