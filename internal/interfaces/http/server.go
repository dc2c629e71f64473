package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/turtacn/BullsEye-Radar/internal/config"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
)

// Server wraps http.Server with the configured timeouts and graceful
// shutdown.
type Server struct {
	srv             *http.Server
	logger          logging.Logger
	shutdownTimeout time.Duration
}

func NewServer(cfg config.ServerConfig, handler http.Handler, logger logging.Logger) *Server {
	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &Server{
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start blocks serving requests until Stop is called or the listener fails.
// http.ErrServerClosed is filtered out: a graceful stop returns nil.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", logging.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

//Personal.AI order the ending
