package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"hoteltec/internal/shared/config"
	appLogger "hoteltec/internal/shared/logger"
)

var (
	client   *redis.Client
	clientMu sync.RWMutex
)

// Init establishes the redis connection used by the rate limiter and health
// checks. A failed ping is returned to the caller; the server decides whether
// to run without redis (rate limiting fails open).
func Init(cfg *config.RedisConfig) error {
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	clientMu.Lock()
	client = c
	clientMu.Unlock()

	appLogger.Info("redis connection established", "addr", cfg.GetAddr())
	return nil
}

// Get returns the redis client, or nil when redis was never initialized.
func Get() *redis.Client {
	clientMu.RLock()
	defer clientMu.RUnlock()
	return client
}

// Close closes the redis connection.
func Close() error {
	clientMu.RLock()
	c := client
	clientMu.RUnlock()

	if c == nil {
		return nil
	}
	if err := c.Close(); err != nil {
		return fmt.Errorf("failed to close redis connection: %w", err)
	}

	appLogger.Info("redis connection closed")
	return nil
}
