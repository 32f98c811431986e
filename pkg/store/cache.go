package store

import (
	"sync"
	"time"
)

// Cache is an in-memory TTL cache for per-user preference values.
// Expired entries are evicted on read.
type Cache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cacheEntry
	nowFn   func() time.Time // replaced in tests
}

type cacheEntry struct {
	enabled bool
	addedAt time.Time
}

// NewCache creates a preference cache with the given TTL
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		nowFn:   time.Now,
	}
}

// Get returns the cached value and whether a fresh entry exists
func (c *Cache) Get(userID string) (enabled, ok bool) {
	c.mu.RLock()
	entry, found := c.entries[userID]
	c.mu.RUnlock()

	if !found {
		return false, false
	}
	if c.nowFn().Sub(entry.addedAt) > c.ttl {
		c.mu.Lock()
		// re-check, a concurrent Set may have refreshed the entry
		if cur, still := c.entries[userID]; still && c.nowFn().Sub(cur.addedAt) > c.ttl {
			delete(c.entries, userID)
		}
		c.mu.Unlock()
		return false, false
	}
	return entry.enabled, true
}

// Set stores the value with a fresh timestamp
func (c *Cache) Set(userID string, enabled bool) {
	c.mu.Lock()
	c.entries[userID] = cacheEntry{enabled: enabled, addedAt: c.nowFn()}
	c.mu.Unlock()
}

// Invalidate drops the entry for a user
func (c *Cache) Invalidate(userID string) {
	c.mu.Lock()
	delete(c.entries, userID)
	c.mu.Unlock()
}
