package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiter_Allow(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()
	config := RateLimitConfig{RequestsPerMinute: 3}

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "ip", config)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d", i+1)
	}
	allowed, _ := limiter.Allow(ctx, "ip", config)
	assert.False(t, allowed)

	allowed, _ = limiter.Allow(ctx, "other", config)
	assert.True(t, allowed)

	used, err := limiter.GetUsed(ctx, "ip", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(3), used)

	// One token refills every 20s.
	now = now.Add(21 * time.Second)
	allowed, _ = limiter.Allow(ctx, "ip", config)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_DeniedWindowDoesNotConsumeOthers(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()
	config := RateLimitConfig{RequestsPerMinute: 10, RequestsPerHour: 1}

	allowed, _ := limiter.Allow(ctx, "ip", config)
	assert.True(t, allowed)
	allowed, _ = limiter.Allow(ctx, "ip", config)
	assert.False(t, allowed)

	used, _ := limiter.GetUsed(ctx, "ip", time.Minute)
	assert.Equal(t, int64(1), used)
}

func TestMemoryRateLimiter_Reset(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	ctx := context.Background()
	config := RateLimitConfig{RequestsPerMinute: 1}

	allowed, _ := limiter.Allow(ctx, "ip", config)
	assert.True(t, allowed)
	require.NoError(t, limiter.Reset(ctx, "ip"))
	allowed, _ = limiter.Allow(ctx, "ip", config)
	assert.True(t, allowed)
}
