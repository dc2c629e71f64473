package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
)

// LoggingConfig tunes the request logging middleware.
type LoggingConfig struct {
	// SkipPaths are high-frequency paths that should not be logged.
	SkipPaths []string

	// SlowThreshold promotes requests slower than this to Warn level.
	SlowThreshold time.Duration
}

// DefaultLoggingConfig skips the health and metrics scrape paths and flags
// requests slower than three seconds.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		SkipPaths:     []string{"/healthz", "/readyz", "/metrics"},
		SlowThreshold: 3 * time.Second,
	}
}

// RequestLogging logs one line per request: method, path, status, duration,
// and the request ID.  5xx responses log at Error, 4xx and slow requests at
// Warn, everything else at Info.
func RequestLogging(logger logging.Logger, cfg LoggingConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		status := c.Writer.Status()
		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", status),
			logging.Duration("duration", duration),
			logging.Int("bytes", c.Writer.Size()),
			logging.String("request_id", GetRequestID(c)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, logging.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			logger.Error("HTTP request failed", fields...)
		case status >= 400:
			logger.Warn("HTTP request rejected", fields...)
		case cfg.SlowThreshold > 0 && duration > cfg.SlowThreshold:
			logger.Warn("Slow HTTP request", fields...)
		default:
			logger.Info("HTTP request", fields...)
		}
	}
}

//Personal.AI order the ending
