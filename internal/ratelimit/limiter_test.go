package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(window time.Duration, max int) (*Limiter, *time.Time) {
	l := NewLimiter(window, max)
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	return l, &current
}

func TestLimiterAdmitsUpToMax(t *testing.T) {
	l, _ := newTestLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Admit("client"), "request %d should be admitted", i+1)
	}
	assert.False(t, l.Admit("client"), "request over the cap should be rejected")
}

func TestLimiterWindowSlides(t *testing.T) {
	l, now := newTestLimiter(time.Minute, 2)

	assert.True(t, l.Admit("client"))
	*now = now.Add(30 * time.Second)
	assert.True(t, l.Admit("client"))
	assert.False(t, l.Admit("client"))

	// One minute after the first request its timestamp falls out of the
	// trailing window, freeing one slot.
	*now = now.Add(31 * time.Second)
	assert.True(t, l.Admit("client"))

	// The second request (30s in) is still inside the window.
	assert.False(t, l.Admit("client"))
}

func TestLimiterRejectionDoesNotConsumeQuota(t *testing.T) {
	l, now := newTestLimiter(time.Minute, 1)

	assert.True(t, l.Admit("client"))

	// Rejected checks must not extend the client's penalty: after the
	// original request ages out, admission resumes regardless of how many
	// rejected checks happened in between.
	for i := 0; i < 5; i++ {
		assert.False(t, l.Admit("client"))
	}

	*now = now.Add(61 * time.Second)
	assert.True(t, l.Admit("client"))
}

func TestLimiterIsolatesClients(t *testing.T) {
	l, _ := newTestLimiter(time.Minute, 1)

	assert.True(t, l.Admit("alice"))
	assert.False(t, l.Admit("alice"))
	assert.True(t, l.Admit("bob"))
}

func TestLimiterDefaults(t *testing.T) {
	l := NewLimiter(0, 0)

	assert.Equal(t, DefaultWindow, l.window)
	assert.Equal(t, DefaultMaxRequests, l.max)
}
