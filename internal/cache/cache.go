// Package cache provides the in-process TTL memoization cache for generated
// study packs, keyed by the normalized request parameters. Entries expire
// lazily on read; there is no background sweep.
package cache

import (
	"sync"
	"time"

	"github.com/exambooster/studypack-api/internal/domain"
)

// DefaultTTL is how long a generated pack stays fresh.
const DefaultTTL = 30 * time.Minute

type entry struct {
	pack      domain.StudyPack
	expiresAt time.Time
}

// Cache maps request keys to previously generated study packs until their
// TTL elapses. It is safe for concurrent use.
//
// By default the cache is unbounded in entry count, mirroring the service's
// original behavior for a low-volume tool. A positive maxEntries turns on a
// hardening bound: at capacity, the entry closest to expiry is evicted to
// make room.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int

	now func() time.Time
}

// New creates a Cache with the given TTL and capacity bound. A non-positive
// ttl falls back to DefaultTTL; maxEntries <= 0 means unbounded.
func New(ttl time.Duration, maxEntries int) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries:    make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Read returns the cached pack for key if present and fresh. An expired
// entry is deleted as a side effect of the read and reported as absent.
func (c *Cache) Read(key string) (domain.StudyPack, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.StudyPack{}, false
	}

	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return domain.StudyPack{}, false
	}

	return e.pack, true
}

// Write stores pack under key with a fresh expiry, overwriting any existing
// entry for the key.
func (c *Cache) Write(key string, pack domain.StudyPack) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.evictSoonest()
	}

	c.entries[key] = entry{
		pack:      pack,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictSoonest removes the entry with the earliest expiry. Expired entries
// that were never read again are the first to go. Caller holds the lock.
func (c *Cache) evictSoonest() {
	var victim string
	var soonest time.Time
	for key, e := range c.entries {
		if victim == "" || e.expiresAt.Before(soonest) {
			victim = key
			soonest = e.expiresAt
		}
	}
	if victim != "" {
		delete(c.entries, victim)
	}
}
