package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MemoryRateLimiter is a per-process token bucket per key and window. Each
// bucket holds the window's full limit and refills evenly across the window.
type MemoryRateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
}

type bucket struct {
	limiter *rate.Limiter
	limit   int
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string, config RateLimitConfig) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	var reserved []*rate.Reservation
	for _, w := range windowsOf(config) {
		if w.limit <= 0 {
			continue
		}
		b := l.bucketFor(key, w)
		r := b.limiter.ReserveN(now, 1)
		if !r.OK() || r.DelayFrom(now) > 0 {
			r.CancelAt(now)
			for _, prev := range reserved {
				prev.CancelAt(now)
			}
			return false, nil
		}
		reserved = append(reserved, r)
	}
	return true, nil
}

func (l *MemoryRateLimiter) bucketFor(key string, w window) *bucket {
	id := key + ":" + w.duration.String()
	b, ok := l.buckets[id]
	if !ok || b.limit != w.limit {
		every := rate.Every(w.duration / time.Duration(w.limit))
		b = &bucket{limiter: rate.NewLimiter(every, w.limit), limit: w.limit}
		l.buckets[id] = b
	}
	return b
}

func (l *MemoryRateLimiter) GetUsed(_ context.Context, key string, window time.Duration) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key+":"+window.String()]
	if !ok {
		return 0, nil
	}
	used := float64(b.limit) - b.limiter.TokensAt(l.now())
	if used < 0 {
		used = 0
	}
	return int64(used + 0.5), nil
}

func (l *MemoryRateLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, d := range []time.Duration{time.Minute, time.Hour, 24 * time.Hour} {
		delete(l.buckets, key+":"+d.String())
	}
	return nil
}
