package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hoteltec/internal/shared/biztime"
	"hoteltec/internal/shared/logger"
)

// RedisRateLimiter implements a sliding-window rate limiter on a redis
// sorted set per key. Entries are scored by unix nanoseconds; each check
// trims entries older than the window, counts the rest, and records the
// current request.
type RedisRateLimiter struct {
	client *redis.Client
	log    logger.Interface
}

func NewRedisRateLimiter(client *redis.Client, log logger.Interface) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		log:    log.Named("ratelimit"),
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, maxRequests int, windowSeconds int) (bool, error) {
	now := biztime.NowUTC()
	windowStart := now.Add(-time.Duration(windowSeconds) * time.Second)
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
	countCmd := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: fmt.Sprintf("%d", now.UnixNano()),
	})
	pipe.Expire(ctx, redisKey, time.Duration(windowSeconds)*time.Second)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	count := countCmd.Val()
	if count >= int64(maxRequests) {
		l.log.Debugw("rate limit exceeded", "key", key, "count", count, "max", maxRequests)
		return false, nil
	}

	return true, nil
}
