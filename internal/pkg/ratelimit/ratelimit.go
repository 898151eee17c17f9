package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a sliding-window rate limiter keyed by an arbitrary string
// (client IP for unauthenticated routes).
type Limiter struct {
	mu     sync.Mutex
	seen   map[string][]time.Time
	limit  int
	window time.Duration
}

// New creates a limiter allowing limit requests per window per key.
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		seen:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
	}
}

// Allow records a request for key and reports whether it is within the
// limit.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-l.window)

	valid := l.seen[key][:0]
	for _, t := range l.seen[key] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	if len(valid) >= l.limit {
		l.seen[key] = valid
		return false
	}

	l.seen[key] = append(valid, now)
	return true
}

// Remaining returns how many requests key has left in the current window.
func (l *Limiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-l.window)
	var valid int
	for _, t := range l.seen[key] {
		if t.After(cutoff) {
			valid++
		}
	}

	if valid >= l.limit {
		return 0
	}
	return l.limit - valid
}
