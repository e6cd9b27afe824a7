package core

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	redis redis.UniversalClient
}

func (c *Cache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return c.redis.Expire(ctx, key, expiration).Err()
}

func (c *Cache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	return c.redis.SetEx(ctx, key, value, expiresAt).Err()
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	return c.redis.Get(ctx, key).Result()
}

func (c *Cache) Del(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}
