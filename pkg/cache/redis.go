package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisDialTimeout = 5 * time.Second

// RedisCache stores values in Redis under a common key prefix. Backend errors
// are logged and reported as cache misses.
type RedisCache struct {
	logger *slog.Logger
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCache(logger *slog.Logger, addr, prefix string, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: redisDialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisCache{
		logger: logger.With(slog.String("cache", "redis")),
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Error("failed to get key", slog.String("key", key), slog.Any("error", err))
		}
		return nil, false
	}
	return data, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, c.prefix+key, value, c.ttl).Err(); err != nil {
		c.logger.Error("failed to set key", slog.String("key", key), slog.Any("error", err))
	}
}

func (c *RedisCache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		c.logger.Error("failed to delete key", slog.String("key", key), slog.Any("error", err))
	}
}

// Start is a no-op: Redis expires keys by itself.
func (c *RedisCache) Start(context.Context) error {
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
