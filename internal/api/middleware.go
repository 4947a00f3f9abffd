package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/duskwarden/hemosearch/internal/metrics"
)

// httpMetrics records per-request count and latency, grouped by route
// pattern rather than raw path so dynamic segments don't blow up label
// cardinality.
func httpMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
