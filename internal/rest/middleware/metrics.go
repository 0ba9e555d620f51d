package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-forum/internal/metrics"
)

// Metrics records every request except scrapes on the collector.
func Metrics(m *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		done := m.RequestStarted()
		defer done()
		c.Next()

		// route template keeps the label set bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
