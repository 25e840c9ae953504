package config

import (
	"context"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// NewRedis builds the shared cache client. A nil return means caching is
// disabled (REDIS_ADDR unset); callers must tolerate that.
func NewRedis(ctx context.Context) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		logger.Info("REDIS_ADDR not set, cache disabled")
		return nil
	}

	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PWD"),
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Warn("Could not reach Redis, cache disabled")
		return nil
	}

	logger.Infof("Connected to Redis at %s", addr)
	return client
}
