// Package cache provides the process-wide query cache that fronts list reads.
//
// Entries are keyed strings with a per-entry TTL. An expired entry behaves as
// absent on read and stays in the map until it is overwritten or invalidated;
// there is no background sweeper. Operations never fail: a miss is a normal
// outcome, not an error.
package cache

import (
	"strings"
	"sync"
	"time"

	"hostboard/internal/pkg/clock"
)

type entry struct {
	value     any
	createdAt time.Time
	ttl       time.Duration
}

type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	clock   clock.Clock
}

func New(clk clock.Clock) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		clock:   clk,
	}
}

// Get returns the value stored under key if the entry exists and its TTL has
// not elapsed. Expired entries are ignored, not deleted.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.clock.Now().Sub(e.createdAt) >= e.ttl {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with a fresh creation timestamp, overwriting any
// previous entry. A non-positive ttl stores an entry that is already expired.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:     value,
		createdAt: c.clock.Now(),
		ttl:       ttl,
	}
}

// Invalidate removes the exact keys given. Unknown keys are a no-op.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		delete(c.entries, key)
	}
}

// InvalidatePrefix removes every entry whose key starts with prefix.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
}

// ValueAs is the typed read path. A stored value of the wrong type counts as
// a miss rather than a failure.
func ValueAs[T any](c *Cache, key string) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
