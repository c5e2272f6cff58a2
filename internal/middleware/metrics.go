package middleware

import (
	"time"

	"github.com/SscSPs/banking_ledger/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// PrometheusMiddleware records count and latency per route template.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
	}
}
