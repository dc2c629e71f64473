// Package redis provides the Redis client and the chart-spec cache built on
// top of it.
package redis

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/turtacn/BullsEye-Radar/internal/config"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/BullsEye-Radar/pkg/errors"
)

var (
	ErrClientClosed     = errors.New(errors.ErrCodeInternal, "redis client is closed")
	ErrConnectionFailed = errors.New(errors.ErrCodeCacheError, "redis connection failed")
)

// Client wraps a go-redis client with lifecycle management.  Only standalone
// mode is supported; the cache degrades gracefully when Redis is down, so
// there is no need for sentinel or cluster topologies here.
type Client struct {
	rdb    redis.UniversalClient
	cfg    config.RedisConfig
	logger logging.Logger
	mu     sync.RWMutex
	closed bool
}

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(cfg config.RedisConfig, log logging.Logger) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, ErrConnectionFailed.WithCause(err)
	}

	log.Info("Connected to Redis", logging.String("addr", cfg.Addr), logging.Int("db", cfg.DB))

	return &Client{rdb: rdb, cfg: cfg, logger: log}, nil
}

// NewClientWithRDB wraps an existing go-redis client (used by tests).
func NewClientWithRDB(rdb redis.UniversalClient, log logging.Logger) *Client {
	return &Client{rdb: rdb, logger: log}
}

// Ping verifies the connection is alive.
func (c *Client) Ping(ctx context.Context) error {
	if c.isClosed() {
		return ErrClientClosed
	}
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "redis ping failed")
	}
	return nil
}

// Close shuts the client down.  Safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.logger.Info("Closing Redis client")
	return c.rdb.Close()
}

func (c *Client) isClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// Command pass-throughs used by the cache layer.

func (c *Client) Get(ctx context.Context, key string) *redis.StringCmd {
	return c.rdb.Get(ctx, key)
}

func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	return c.rdb.Set(ctx, key, value, expiration)
}

func (c *Client) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return c.rdb.Del(ctx, keys...)
}

func (c *Client) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	return c.rdb.Exists(ctx, keys...)
}

func (c *Client) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd {
	return c.rdb.Scan(ctx, cursor, match, count)
}

//Personal.AI order the ending
