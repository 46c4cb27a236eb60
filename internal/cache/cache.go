// Package cache wraps a Redis client behind a small TTL cache interface.
// The client is constructed once in main and injected into whoever needs
// it; nothing in this package is process-global.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrMiss is returned when a key is absent.
var ErrMiss = errors.New("cache: miss")

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(ctx context.Context, addr, password string, ttl time.Duration) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return &Cache{client: client, ttl: ttl}, nil
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrMiss
		}

		return "", fmt.Errorf("cache get: %w", err)
	}

	return val, nil
}

func (c *Cache) Set(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}

	return nil
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}

	return nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}
