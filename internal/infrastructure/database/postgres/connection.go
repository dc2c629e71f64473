// Package postgres manages the PostgreSQL connection pool and schema
// migrations for the BullsEye-Radar service.
package postgres

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/turtacn/BullsEye-Radar/internal/config"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/BullsEye-Radar/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Connection
// ─────────────────────────────────────────────────────────────────────────────

// Connection wraps a pgx connection pool together with the configuration it
// was built from.  All repositories share a single Connection.
type Connection struct {
	pool   *pgxpool.Pool
	cfg    config.DatabaseConfig
	logger logging.Logger
	once   sync.Once
}

// NewConnection establishes a PostgreSQL connection pool and verifies it with
// a ping before returning.
func NewConnection(ctx context.Context, cfg config.DatabaseConfig, log logging.Logger) (*Connection, error) {
	poolCfg, err := pgxpool.ParseConfig(BuildDSN(cfg))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to parse database config")
	}

	if cfg.MaxOpenConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		poolCfg.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to create connection pool")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "database connection failed")
	}

	log.Info("Connected to PostgreSQL database",
		logging.String("host", cfg.Host),
		logging.Int("port", cfg.Port),
		logging.String("database", cfg.DBName),
	)

	return &Connection{pool: pool, cfg: cfg, logger: log}, nil
}

// NewConnectionWithPool wraps an existing pool (used by tests).
func NewConnectionWithPool(pool *pgxpool.Pool, log logging.Logger) *Connection {
	return &Connection{pool: pool, logger: log}
}

// Pool returns the underlying pgx pool.
func (c *Connection) Pool() *pgxpool.Pool {
	return c.pool
}

// HealthCheck verifies the database is reachable and warns when the pool is
// close to exhaustion.
func (c *Connection) HealthCheck(ctx context.Context) error {
	if err := c.pool.Ping(ctx); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "database health check failed")
	}

	stat := c.pool.Stat()
	if stat.TotalConns() > 0 {
		usage := float64(stat.AcquiredConns()) / float64(stat.TotalConns())
		if usage > 0.8 {
			c.logger.Warn("High database connection pool usage",
				logging.Int("acquired", int(stat.AcquiredConns())),
				logging.Int("total", int(stat.TotalConns())),
				logging.Float64("usage", usage),
			)
		}
	}
	return nil
}

// Close shuts down the pool.  Safe to call more than once.
func (c *Connection) Close() {
	c.once.Do(func() {
		c.pool.Close()
		c.logger.Info("Closed PostgreSQL connection pool")
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// DSN
// ─────────────────────────────────────────────────────────────────────────────

// BuildDSN constructs the PostgreSQL connection URL from configuration.
func BuildDSN(cfg config.DatabaseConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:   cfg.DBName,
	}

	q := u.Query()
	if cfg.SSLMode != "" {
		q.Set("sslmode", cfg.SSLMode)
	} else {
		q.Set("sslmode", "disable")
	}
	u.RawQuery = q.Encode()

	return u.String()
}

//Personal.AI order the ending
