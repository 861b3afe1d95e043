package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/examcell/exam-admin-api/internal/service"
)

// Metrics observes every request under its route template. Unmatched routes
// fall back to the raw path.
func Metrics(m *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		m.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
