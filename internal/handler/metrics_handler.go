package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/examcell/exam-admin-api/internal/service"
)

// MetricsHandler serves the observability endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
	started time.Time
}

func NewMetricsHandler(metrics *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, started: time.Now()}
}

// Prometheus exposes the scrape endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health answers liveness and readiness probes.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}
