package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coursespeak/coursespeak/internal/metrics"
)

// Metrics observes request durations into the prometheus histogram, labeled by
// route pattern (not the raw path, to keep cardinality bounded).
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.RecordRequestDuration(route, c.Request.Method, status, time.Since(start).Seconds())
	}
}
