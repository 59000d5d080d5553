// Package biztime is the single clock used by the domain.
// All storage and transport use UTC at millisecond precision, which is what
// the persistence layer keeps.
package biztime

import (
	"sync"
	"time"
)

// TimestampLayout is the human readable form used in voice note views.
const TimestampLayout = "2006-01-02 15:04:05"

var (
	clockMu sync.RWMutex
	nowFunc = time.Now
)

// NowUTC returns current time in UTC truncated to milliseconds.
func NowUTC() time.Time {
	clockMu.RLock()
	fn := nowFunc
	clockMu.RUnlock()
	return fn().UTC().Truncate(time.Millisecond)
}

// Next returns a timestamp strictly after prev, normally NowUTC. When the clock
// has not advanced past prev (coarse clocks, back-to-back writes) it returns
// prev plus one millisecond.
func Next(prev time.Time) time.Time {
	now := NowUTC()
	if !now.After(prev) {
		return prev.Add(time.Millisecond)
	}
	return now
}

// FromMillis converts a stored unix millisecond value back to UTC time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// FormatTimestamp renders t in TimestampLayout (UTC).
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// SetClock replaces the clock source and returns a function restoring the previous one.
// Tests only.
func SetClock(fn func() time.Time) (restore func()) {
	clockMu.Lock()
	prev := nowFunc
	nowFunc = fn
	clockMu.Unlock()
	return func() {
		clockMu.Lock()
		nowFunc = prev
		clockMu.Unlock()
	}
}
