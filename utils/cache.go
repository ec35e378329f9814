package utils

import (
	"context"
	"fmt"
	"time"

	"glowbook/config"

	"github.com/go-redis/redis/v8"
)

// NewCacheClient connects to the Redis cache database and pings it. On a failed
// ping the client is closed and the error returned; callers run without a cache.
func NewCacheClient(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisCacheDB,
		DialTimeout: 2 * time.Second,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis cache %s: %w", cfg.RedisAddr, err)
	}
	return client, nil
}
