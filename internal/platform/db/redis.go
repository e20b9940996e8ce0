package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var pingRedisFn = func(ctx context.Context, c *redis.Client) error { return c.Ping(ctx).Err() }

// OpenRedis returns a client for addr, or nil when addr is empty.
func OpenRedis(ctx context.Context, addr, password string) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := pingRedisFn(ctx, client); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("openRedis: ping %s: %w", addr, err)
	}

	return client, nil
}
