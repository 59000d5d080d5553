// Package ratelimit counts requests per key over fixed windows. Redis backs it
// when configured so limits hold across processes; otherwise counting happens
// in memory.
package ratelimit

import (
	"context"
	"time"
)

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

type RateLimiter interface {
	// Allow records a request for key and reports whether it is within every
	// configured window. Zero limits are not enforced.
	Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error)
	// GetUsed returns the number of requests recorded for key in window.
	GetUsed(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}

type window struct {
	duration time.Duration
	limit    int
}

func windowsOf(config RateLimitConfig) []window {
	return []window{
		{time.Minute, config.RequestsPerMinute},
		{time.Hour, config.RequestsPerHour},
		{24 * time.Hour, config.RequestsPerDay},
	}
}
