package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ip-search-agent/internal/metrics"
)

// unmatchedRoute labels requests that hit no route
const unmatchedRoute = "unmatched"

// Metrics records the count and latency of every request by route template
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		m.ObserveHTTP(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
