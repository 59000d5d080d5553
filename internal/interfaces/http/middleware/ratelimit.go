package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ticketdesk/ticketdesk/internal/infrastructure/ratelimit"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
	"github.com/ticketdesk/ticketdesk/internal/shared/utils"
)

// RateLimiter limits requests per client IP for the routes it is attached to.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	scope   string
	config  ratelimit.RateLimitConfig
	logger  logger.Interface
}

// NewRateLimiter returns a limiter whose counters are namespaced by scope, so
// separate route groups do not share a budget.
func NewRateLimiter(limiter ratelimit.RateLimiter, scope string, config ratelimit.RateLimitConfig, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		scope:   scope,
		config:  config,
		logger:  log,
	}
}

// Limit fails open: a counter backend error lets the request through.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.scope + ":ip:" + c.ClientIP()

		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.config)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "key", key, "error", err)
			c.Next()
			return
		}

		if !allowed {
			rl.logger.Infow("rate limit exceeded", "key", key, "path", c.Request.URL.Path)
			utils.ErrorResponseWithError(c, errors.NewTooManyRequestsError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
