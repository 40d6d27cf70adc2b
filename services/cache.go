package services

import (
	"sync"
	"time"
)

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

// TTLCache is a small in-process cache with per-key expiry. Reads and
// writes are uncoordinated beyond the lock; a stale read inside the TTL
// window is an accepted tradeoff.
type TTLCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func NewTTLCache() *TTLCache {
	return &TTLCache{entries: make(map[string]cacheEntry)}
}

func (c *TTLCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.value, true
}

func (c *TTLCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}
