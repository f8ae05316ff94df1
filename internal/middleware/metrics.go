package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency keyed by route template.
func (m Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.metrics.ObserveRequest(route, c.Writer.Status(), time.Since(start))
	}
}
