// Package ratelimit implements per-client sliding-window admission control.
// The window slides continuously with the clock: every admission check
// re-filters the client's recorded request instants, so correctness does not
// depend on how often a client calls.
package ratelimit

import (
	"sync"
	"time"
)

// Defaults match the service's historical limits: 20 requests per client per
// trailing minute.
const (
	DefaultWindow      = time.Minute
	DefaultMaxRequests = 20
)

// Limiter tracks request instants per opaque client identifier and admits a
// request only while fewer than max instants fall inside the trailing window.
// State is process-wide and never persisted; each instance of the service
// enforces its own limits.
type Limiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	clients map[string][]time.Time

	// now is the clock; replaced in tests.
	now func() time.Time
}

// NewLimiter creates a Limiter with the given window width and per-window
// request cap. Non-positive arguments fall back to the defaults.
func NewLimiter(window time.Duration, max int) *Limiter {
	if window <= 0 {
		window = DefaultWindow
	}
	if max <= 0 {
		max = DefaultMaxRequests
	}
	return &Limiter{
		window:  window,
		max:     max,
		clients: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Admit reports whether the client may perform a request right now, and if
// so records the request instant. Expired instants are pruned on every call;
// a rejected call stores back the pruned list but records nothing new.
//
// The prune-then-append sequence holds the limiter lock, so concurrent checks
// for the same client cannot interleave and overshoot the cap.
func (l *Limiter) Admit(clientID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	recent := l.clients[clientID][:0]
	for _, stamp := range l.clients[clientID] {
		if now.Sub(stamp) < l.window {
			recent = append(recent, stamp)
		}
	}

	if len(recent) >= l.max {
		l.clients[clientID] = recent
		return false
	}

	l.clients[clientID] = append(recent, now)
	return true
}
