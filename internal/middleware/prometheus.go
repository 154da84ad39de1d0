package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prostaff/prostaff_backend/internal/metrics"
)

// PrometheusMiddleware records request counts and latency per matched route.
func PrometheusMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
