package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/prometheus"
)

// Metrics records request count, duration, and in-flight gauge per request.
// The route template (e.g. /api/v1/datasets/:id) labels the metric rather
// than the raw path, keeping label cardinality bounded.
func Metrics(m *prometheus.AppMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		method := c.Request.Method
		m.HTTPActiveRequests.WithLabelValues(method).Inc()
		start := time.Now()

		c.Next()

		m.HTTPActiveRequests.WithLabelValues(method).Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		prometheus.RecordHTTPRequest(m, method, path, c.Writer.Status(), time.Since(start))
	}
}

//Personal.AI order the ending
