package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"deploystack/base-services/internal/logging"
	"deploystack/base-services/internal/probe"
)

// NewRedisClient builds a Redis client for the template's optional cache
// dependency. The connection pool reconnects on its own, so a failed initial
// ping is logged but not fatal.
func NewRedisClient(host, port, password string) *redis.Client {
	addr := fmt.Sprintf("%s:%s", host, port)
	logging.Info("Initializing Redis client", "addr", addr)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Warn("Failed to ping Redis", "addr", addr, "error", err.Error())
	}
	return client
}

// RedisCheck wraps the client in a readiness check.
func RedisCheck(client *redis.Client) probe.Check {
	return probe.Check{
		Name: "redis",
		Run: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
	}
}
