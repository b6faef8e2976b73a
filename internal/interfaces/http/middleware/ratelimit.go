package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteltec/internal/infrastructure/ratelimit"
	"hoteltec/internal/shared/logger"
	"hoteltec/internal/shared/utils"
)

// GuestRateLimit limits storefront and order endpoints per client IP using
// the shared sliding-window limiter. A limiter error fails open so a redis
// outage cannot take the storefront down with it.
type GuestRateLimit struct {
	limiter       ratelimit.RateLimiter
	maxRequests   int
	windowSeconds int
	logger        logger.Interface
}

func NewGuestRateLimit(limiter ratelimit.RateLimiter, maxRequests, windowSeconds int, logger logger.Interface) *GuestRateLimit {
	return &GuestRateLimit{
		limiter:       limiter,
		maxRequests:   maxRequests,
		windowSeconds: windowSeconds,
		logger:        logger,
	}
}

func (m *GuestRateLimit) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("guest:%s", c.ClientIP())
		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.maxRequests, m.windowSeconds)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable, allowing request", "error", err, "key", key)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests, please slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
