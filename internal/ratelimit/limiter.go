// Package ratelimit throttles POST requests per client IP.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long an untouched client bucket is kept before pruning.
const idleTTL = 10 * time.Minute

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter manages one token bucket per key.
type Limiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu        sync.Mutex
	limiters  map[string]*entry
	lastPrune time.Time
}

// New creates a limiter allowing perMinute requests per key, refilled evenly
// over the minute. The full allowance is available as a burst.
func New(perMinute int) *Limiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	return &Limiter{
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
		now:      time.Now,
		limiters: make(map[string]*entry),
	}
}

// Allow reports whether a request for key may proceed now.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	now := l.now()
	l.pruneLocked(now)

	e, ok := l.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = e
	}
	e.lastSeen = now
	l.mu.Unlock()

	return e.limiter.AllowN(now, 1)
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// pruneLocked drops idle buckets, at most once per idleTTL. An idle bucket
// has fully refilled, so dropping it never changes a decision.
func (l *Limiter) pruneLocked(now time.Time) {
	if now.Sub(l.lastPrune) < idleTTL {
		return
	}
	l.lastPrune = now
	for key, e := range l.limiters {
		if now.Sub(e.lastSeen) >= idleTTL {
			delete(l.limiters, key)
		}
	}
}
