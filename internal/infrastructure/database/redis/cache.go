package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/BullsEye-Radar/pkg/errors"
)

var (
	ErrCacheMiss           = errors.New(errors.ErrCodeNotFound, "cache miss")
	ErrSerializationFailed = errors.New(errors.ErrCodeSerialization, "serialization failed")
)

// Cache is the read-through cache used for computed chart specs.  Values are
// JSON-serialized; a miss is reported as ErrCacheMiss.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration, loader func(ctx context.Context) (interface{}, error)) error
	DeleteByPrefix(ctx context.Context, prefix string) (int64, error)
	Ping(ctx context.Context) error
}

type redisCache struct {
	client       *Client
	logger       logging.Logger
	prefix       string
	defaultTTL   time.Duration
	singleflight singleflight.Group
}

// CacheOption customises a cache at construction time.
type CacheOption func(*redisCache)

func WithPrefix(prefix string) CacheOption {
	return func(c *redisCache) { c.prefix = prefix }
}

func WithDefaultTTL(ttl time.Duration) CacheOption {
	return func(c *redisCache) { c.defaultTTL = ttl }
}

// NewRedisCache builds a Cache on top of an established Client.
func NewRedisCache(client *Client, log logging.Logger, opts ...CacheOption) Cache {
	c := &redisCache{
		client:     client,
		logger:     log,
		prefix:     "bullseye:",
		defaultTTL: 10 * time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *redisCache) fullKey(key string) string {
	return c.prefix + key
}

// jitterTTL spreads expirations +/- 10% to avoid a thundering herd when many
// cached specs were written in the same instant.
func (c *redisCache) jitterTTL(ttl time.Duration) time.Duration {
	if ttl == 0 {
		return 0
	}
	jitter := float64(ttl) * 0.1 * (rand.Float64()*2 - 1)
	return ttl + time.Duration(jitter)
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, c.fullKey(key)).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "failed to get from cache")
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return ErrSerializationFailed.WithCause(err)
	}
	return nil
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	data, err := json.Marshal(value)
	if err != nil {
		return ErrSerializationFailed.WithCause(err)
	}
	if err := c.client.Set(ctx, c.fullKey(key), data, c.jitterTTL(ttl)).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "failed to set cache entry")
	}
	return nil
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	fullKeys := make([]string, len(keys))
	for i, k := range keys {
		fullKeys[i] = c.fullKey(k)
	}
	if err := c.client.Del(ctx, fullKeys...).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "failed to delete cache entries")
	}
	return nil
}

// GetOrSet returns the cached value or runs loader once per key across
// concurrent callers, caching its result.
func (c *redisCache) GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration, loader func(ctx context.Context) (interface{}, error)) error {
	err := c.Get(ctx, key, dest)
	if err == nil {
		return nil
	}
	if err != ErrCacheMiss {
		c.logger.Warn("Cache read failed, falling through to loader",
			logging.String("key", key), logging.Err(err))
	}

	val, err, _ := c.singleflight.Do(key, func() (interface{}, error) {
		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.Set(ctx, key, loaded, ttl); err != nil {
			c.logger.Warn("Cache write failed", logging.String("key", key), logging.Err(err))
		}
		return loaded, nil
	})
	if err != nil {
		return err
	}

	data, err := json.Marshal(val)
	if err != nil {
		return ErrSerializationFailed.WithCause(err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return ErrSerializationFailed.WithCause(err)
	}
	return nil
}

// DeleteByPrefix removes every key under the given logical prefix via SCAN,
// returning the number of keys deleted.
func (c *redisCache) DeleteByPrefix(ctx context.Context, prefix string) (int64, error) {
	var deleted int64
	var cursor uint64
	match := c.fullKey(prefix) + "*"
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, match, 100).Result()
		if err != nil {
			return deleted, errors.Wrap(err, errors.ErrCodeCacheError, "failed to scan cache keys")
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return deleted, errors.Wrap(err, errors.ErrCodeCacheError, "failed to delete scanned keys")
			}
			deleted += int64(len(keys))
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	return deleted, nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx)
}

//Personal.AI order the ending
