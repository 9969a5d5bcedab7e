// Package cache provides an in-memory LRU cache with TTL expiration.
package cache

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/guttosm/checkout-service/internal/metrics"
)

// Cache defines the interface for cache operations.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Invalidate(key K)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// TTLCache is a thread-safe LRU cache whose entries also expire after a TTL.
// Setting an existing key refreshes its expiry.
type TTLCache[K comparable, V any] struct {
	name      string
	capacity  int
	lru       *expirable.LRU[K, V]
	stopped   atomic.Bool
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// NewTTLCache creates a cache named name (used as metrics label) holding at most capacity entries.
// A non-positive ttl disables expiry.
func NewTTLCache[K comparable, V any](name string, capacity int, ttl time.Duration) *TTLCache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &TTLCache[K, V]{
		name:     name,
		capacity: capacity,
		lru:      expirable.NewLRU[K, V](capacity, nil, ttl),
	}
}

// Get returns the value for key if present and not expired.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	value, ok := c.lru.Get(key)
	if !ok {
		c.misses.Add(1)
		metrics.RecordCacheOperation(c.name, "get", "miss")
		return value, false
	}
	c.hits.Add(1)
	metrics.RecordCacheOperation(c.name, "get", "hit")
	return value, true
}

// Set adds or replaces the value for key, evicting the least recently used entry when full.
// Sets after Stop are dropped.
func (c *TTLCache[K, V]) Set(key K, value V) {
	if c.stopped.Load() {
		return
	}
	if c.lru.Add(key, value) {
		c.evictions.Add(1)
		metrics.RecordCacheOperation(c.name, "evict", "capacity")
	}
	metrics.UpdateCacheSize(c.name, c.lru.Len())
}

// Invalidate removes key from the cache.
func (c *TTLCache[K, V]) Invalidate(key K) {
	if c.lru.Remove(key) {
		metrics.RecordCacheOperation(c.name, "invalidate", "success")
		metrics.UpdateCacheSize(c.name, c.lru.Len())
	}
}

// Clear removes all entries and resets the counters.
func (c *TTLCache[K, V]) Clear() {
	c.lru.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
	metrics.UpdateCacheSize(c.name, 0)
}

// Stop empties the cache and stops accepting new entries. Safe to call more than once.
func (c *TTLCache[K, V]) Stop() {
	if c.stopped.CompareAndSwap(false, true) {
		c.lru.Purge()
		metrics.UpdateCacheSize(c.name, 0)
	}
}

// Metrics returns current cache performance metrics.
// Size may include expired entries not yet swept.
func (c *TTLCache[K, V]) Metrics() Metrics {
	return Metrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      c.lru.Len(),
		Capacity:  c.capacity,
	}
}
