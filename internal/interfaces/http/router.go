// Package http wires the gin route tree and the HTTP server around the
// dataset and chart services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/BullsEye-Radar/internal/interfaces/http/handlers"
	"github.com/turtacn/BullsEye-Radar/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handlers and cross-cutting dependencies the
// route tree needs.
type RouterConfig struct {
	DatasetHandler *handlers.DatasetHandler
	ChartHandler   *handlers.ChartHandler
	HealthHandler  *handlers.HealthHandler

	Logger  logging.Logger
	Metrics *prometheus.AppMetrics

	// MetricsHandler serves the Prometheus scrape endpoint; nil disables
	// /metrics.
	MetricsHandler http.Handler

	// CORS overrides the default cross-origin policy when non-nil.
	CORS *middleware.CORSConfig

	// Mode selects the gin mode: gin.DebugMode, gin.ReleaseMode, or
	// gin.TestMode.  Empty defaults to release.
	Mode string
}

// NewRouter builds the complete route tree.
func NewRouter(cfg RouterConfig) *gin.Engine {
	mode := cfg.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	corsCfg := middleware.DefaultCORSConfig()
	if cfg.CORS != nil {
		corsCfg = *cfg.CORS
	}
	r.Use(middleware.CORS(corsCfg))

	if cfg.Logger != nil {
		r.Use(middleware.RequestLogging(cfg.Logger, middleware.DefaultLoggingConfig()))
	}
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Liveness)
		r.GET("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}

	api := r.Group("/api/v1")
	registerDatasetRoutes(api, cfg.DatasetHandler, cfg.ChartHandler)

	return r
}

func registerDatasetRoutes(r *gin.RouterGroup, dh *handlers.DatasetHandler, ch *handlers.ChartHandler) {
	if dh != nil {
		r.POST("/datasets", dh.Create)
		r.GET("/datasets", dh.List)
		// Static route before the :id wildcard.
		r.GET("/datasets/template", dh.Template)
		r.GET("/datasets/:id", dh.Get)
		r.PUT("/datasets/:id", dh.Replace)
		r.DELETE("/datasets/:id", dh.Delete)
		r.GET("/datasets/:id/export", dh.Export)
	}
	if ch != nil {
		r.GET("/datasets/:id/chart", ch.Get)
	}
}

//Personal.AI order the ending
