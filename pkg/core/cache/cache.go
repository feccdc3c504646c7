// ============================================================================
// dayx - calendar-aware date-time toolkit
// ============================================================================
//
// Package:     cache
// Description: Bounded thread-safe cache and the parse memo used by the
//              interactive shell
// Author:      dayx team
// Created:     2025-12-10
// License:     MIT
// ============================================================================

package cache

import (
	"sync"
)

// entry is a cached item stamped with its last use
type entry[V any] struct {
	value V
	used  uint64
}

// Cache is a thread-safe in-memory cache that evicts the least recently
// used entry once maxItems is reached
type Cache[V any] struct {
	mu       sync.Mutex
	items    map[string]*entry[V]
	maxItems int
	clock    uint64

	// Metrics
	hits   int64
	misses int64
}

// DefaultMaxItems bounds a cache created with a non-positive size
const DefaultMaxItems = 1024

// New creates a new cache instance
func New[V any](maxItems int) *Cache[V] {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	return &Cache[V]{
		items:    make(map[string]*entry[V]),
		maxItems: maxItems,
	}
}

// Get retrieves a value from the cache
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}

	c.hits++
	c.clock++
	e.used = c.clock
	return e.value, true
}

// Set stores a value in the cache
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clock++
	if e, ok := c.items[key]; ok {
		e.value = value
		e.used = c.clock
		return
	}

	if len(c.items) >= c.maxItems {
		c.evictOldest()
	}
	c.items[key] = &entry[V]{value: value, used: c.clock}
}

// Delete removes a value from the cache
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear removes all items from the cache
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*entry[V])
}

// Size returns the number of items in the cache
func (c *Cache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns cache statistics; hitRate is a percentage
func (c *Cache[V]) Stats() (hits, misses int64, hitRate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hits = c.hits
	misses = c.misses
	total := hits + misses
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return
}

// GetOrSet returns the cached value or stores the result of fn.
// Errors from fn are returned and nothing is stored.
func (c *Cache[V]) GetOrSet(key string, fn func() (V, error)) (V, error) {
	if val, ok := c.Get(key); ok {
		return val, nil
	}

	val, err := fn()
	if err != nil {
		var zero V
		return zero, err
	}

	c.Set(key, val)
	return val, nil
}

// evictOldest removes the least recently used entry (must be called with lock held)
func (c *Cache[V]) evictOldest() {
	var (
		oldestKey string
		oldest    uint64
		found     bool
	)

	for key, e := range c.items {
		if !found || e.used < oldest {
			oldestKey, oldest, found = key, e.used, true
		}
	}

	if found {
		delete(c.items, oldestKey)
	}
}
