// Package cache implements the in-process TTL store for computed reports.
// It has no persistence guarantee: dropping it entirely only costs latency,
// never correctness.
package cache

import (
	"sync"
	"time"

	"github.com/a13312860897-create/invomate-sub001/internal/clock"
	"github.com/bwmarrin/snowflake"
)

// DefaultTTL bounds entry freshness when no TTL is configured.
const DefaultTTL = 5 * time.Minute

// Key identifies one cached report.
type Key struct {
	OwnerID  snowflake.ID
	Kind     string
	MonthKey string
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache is a mutex-guarded value store with lazy, read-time expiry. There
// is no eviction goroutine; expired entries are dropped when read or
// overwritten.
type TTLCache[V any] struct {
	mu      sync.RWMutex
	clock   clock.Clock
	ttl     time.Duration
	entries map[Key]entry[V]
}

func New[V any](clk clock.Clock, ttl time.Duration) *TTLCache[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TTLCache[V]{
		clock:   clk,
		ttl:     ttl,
		entries: make(map[Key]entry[V]),
	}
}

// Get returns the cached value for key if present and unexpired.
func (c *TTLCache[V]) Get(key Key) (V, bool) {
	c.mu.RLock()
	item, ok := c.entries[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if c.clock.Now().After(item.expiresAt) {
		c.mu.Lock()
		// re-check under the write lock: a concurrent Set may have renewed it
		if current, still := c.entries[key]; still && c.clock.Now().After(current.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return zero, false
	}
	return item.value, true
}

// Set stores value under key with the cache's default TTL.
func (c *TTLCache[V]) Set(key Key, value V) {
	c.SetTTL(key, value, c.ttl)
}

// SetTTL stores value under key with an explicit TTL. Concurrent writers to
// the same key compute the same deterministic value, so last-writer-wins.
func (c *TTLCache[V]) SetTTL(key Key, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.ttl
	}
	expiresAt := c.clock.Now().Add(ttl)
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, expiresAt: expiresAt}
	c.mu.Unlock()
}

// Invalidate drops every kind cached for the owner and month.
func (c *TTLCache[V]) Invalidate(ownerID snowflake.ID, monthKey string) {
	c.mu.Lock()
	for key := range c.entries {
		if key.OwnerID == ownerID && key.MonthKey == monthKey {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

// InvalidateOwner drops every entry cached for the owner, all months.
func (c *TTLCache[V]) InvalidateOwner(ownerID snowflake.ID) {
	c.mu.Lock()
	for key := range c.entries {
		if key.OwnerID == ownerID {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

// InvalidateAll empties the cache.
func (c *TTLCache[V]) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[Key]entry[V])
	c.mu.Unlock()
}

// Len counts stored entries, expired ones included.
func (c *TTLCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
