package data

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// BootstrapCache holds the most recent bootstrap-static response. The FPL
// bootstrap payload is a single document keyed only by fetch time, so this is
// a one-entry cache with a TTL.
//
// The clock is injected so tests can control expiry without sleeping. There
// is no package-level instance; the owner constructs one and passes it down.
type BootstrapCache struct {
	mu        sync.RWMutex
	clock     clockwork.Clock
	ttl       time.Duration
	data      *Bootstrap
	fetchedAt time.Time
}

// NewBootstrapCache creates a cache with the given TTL.
func NewBootstrapCache(ttl time.Duration, clock clockwork.Clock) *BootstrapCache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &BootstrapCache{clock: clock, ttl: ttl}
}

// Get returns the cached bootstrap if present and not expired.
func (c *BootstrapCache) Get() (*Bootstrap, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.data == nil {
		return nil, false
	}
	if c.clock.Now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.data, true
}

// Stale returns the cached bootstrap regardless of expiry. Used as a
// fallback when a refresh fails and old data beats no data.
func (c *BootstrapCache) Stale() (*Bootstrap, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data, c.data != nil
}

// Set stores a freshly fetched bootstrap.
func (c *BootstrapCache) Set(b *Bootstrap) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = b
	c.fetchedAt = c.clock.Now()
}

// Clear drops the cached entry.
func (c *BootstrapCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = nil
	c.fetchedAt = time.Time{}
}
