package ratelimit

import "context"

// RateLimiter decides whether a request identified by key may proceed.
type RateLimiter interface {
	// Allow reports whether the request is within the limit of maxRequests
	// per windowSeconds for the given key.
	Allow(ctx context.Context, key string, maxRequests int, windowSeconds int) (bool, error)
}
