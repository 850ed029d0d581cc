package cache

import (
	"sync"

	"memocache/internal/list"
	"memocache/internal/util"
)

// fifoEntry is the per-key payload kept in the insertion-order list.
// The key lives alongside the value because eviction starts from the
// front list element, not from the map.
type fifoEntry[K comparable, V any] struct {
	key K
	val V
}

// FIFO is a bounded map-like container that discards the
// oldest-inserted entry when an insert would exceed its capacity.
// Lookups never reorder entries, which makes every operation cheaper
// than on an LRU at the cost of ignoring recency entirely.
// All methods are safe for concurrent use by multiple goroutines.
type FIFO[K comparable, V any] struct {
	// ---- guarded by mu ----
	mu      sync.RWMutex
	m       map[K]*list.Element[fifoEntry[K, V]]
	order   *list.List[fifoEntry[K, V]] // front = oldest inserted
	maxsize int

	opt Options[K, V]

	// ---- hot counters (separate cache lines to avoid false sharing) ----
	_      util.CacheLinePad
	hits   util.PaddedAtomicInt64
	misses util.PaddedAtomicInt64
	evicts util.PaddedAtomicInt64
}

// NewFIFO constructs a FIFO container with the provided Options.
// It panics if opt.Capacity is not positive. Options.Loader is
// ignored; GetOrLoad is an LRU-only feature.
func NewFIFO[K comparable, V any](opt Options[K, V]) *FIFO[K, V] {
	if opt.Capacity <= 0 {
		panic("cache: Capacity must be > 0")
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	return &FIFO[K, V]{
		m:       make(map[K]*list.Element[fifoEntry[K, V]], opt.Capacity),
		order:   list.New[fifoEntry[K, V]](),
		maxsize: opt.Capacity,
		opt:     opt,
	}
}

// MaxSize returns the capacity in entries.
func (c *FIFO[K, V]) MaxSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxsize
}

// Set inserts or updates k→v. An existing key is overwritten in place
// and keeps its insertion-order position; it is not treated as new
// for eviction purposes. A new key inserted at capacity first evicts
// the oldest-inserted entry.
func (c *FIFO[K, V]) Set(k K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.m[k]; ok {
		el.Value.val = v
		return
	}
	if len(c.m) >= c.maxsize {
		c.evictLocked(c.order.Front())
	}
	c.m[k] = c.order.PushBack(fifoEntry[K, V]{key: k, val: v})
	c.opt.Metrics.Size(len(c.m))
}

// Get returns the value for k, or the zero value and ErrNotFound when
// k is absent. A hit increments the hit counter, a miss the miss
// counter, never both for the same lookup.
func (c *FIFO[K, V]) Get(k K) (V, error) {
	c.mu.RLock()
	el, ok := c.m[k]
	if !ok {
		c.mu.RUnlock()
		c.misses.Add(1)
		c.opt.Metrics.Miss()
		var zero V
		return zero, ErrNotFound
	}
	v := el.Value.val
	c.mu.RUnlock()
	c.hits.Add(1)
	c.opt.Metrics.Hit()
	return v, nil
}

// GetDefault returns the value for k, or def when k is absent.
// This is the cheap lookup path: it takes only the read lock and
// touches no counters or metrics at all.
func (c *FIFO[K, V]) GetDefault(k K, def V) V {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if el, ok := c.m[k]; ok {
		return el.Value.val
	}
	return def
}

// Contains reports whether k is resident in O(1). It never touches the
// counters.
func (c *FIFO[K, V]) Contains(k K) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.m[k]
	return ok
}

// Keys returns the resident keys in unspecified order.
func (c *FIFO[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]K, 0, len(c.m))
	for k := range c.m {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of resident entries.
func (c *FIFO[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Clear removes every entry. The hit/miss/eviction counters keep
// their values; OnEvict is not invoked for the discarded entries.
func (c *FIFO[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = make(map[K]*list.Element[fifoEntry[K, V]], c.maxsize)
	c.order = list.New[fifoEntry[K, V]]()
	c.opt.Metrics.Size(0)
}

// Stats returns a snapshot of the hit/miss/eviction counters.
func (c *FIFO[K, V]) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evicts.Load(),
	}
}

// evictLocked removes the list element and its key, and fires the
// eviction counter, metric and callback. Caller holds the write lock.
func (c *FIFO[K, V]) evictLocked(el *list.Element[fifoEntry[K, V]]) {
	if el == nil {
		return
	}
	e := c.order.Remove(el)
	delete(c.m, e.key)

	c.evicts.Add(1)
	c.opt.Metrics.Evict()
	if cb := c.opt.OnEvict; cb != nil {
		cb(e.key, e.val)
	}
}
