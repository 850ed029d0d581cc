package cache

import (
	"context"
	"sync"

	"memocache/internal/singleflight"
	"memocache/internal/util"
)

// LRU is a bounded map-like container that discards the
// least-recently-used entry when an insert would exceed its capacity.
// Every successful lookup promotes the entry to most-recently-used.
// All methods are safe for concurrent use by multiple goroutines.
type LRU[K comparable, V any] struct {
	// ---- guarded by mu ----
	mu      sync.RWMutex
	m       map[K]*node[K, V]
	head    *node[K, V] // MRU; head.prev is the LRU tail
	maxsize int
	full    bool // sticky once capacity has been reached; skips the len check

	opt Options[K, V]

	// singleflight group coalescing concurrent loads in GetOrLoad.
	sf singleflight.Group[K, V]

	// ---- hot counters (separate cache lines to avoid false sharing) ----
	_      util.CacheLinePad
	hits   util.PaddedAtomicInt64
	misses util.PaddedAtomicInt64
	evicts util.PaddedAtomicInt64
}

// NewLRU constructs an LRU container with the provided Options.
// It panics if opt.Capacity is not positive.
func NewLRU[K comparable, V any](opt Options[K, V]) *LRU[K, V] {
	if opt.Capacity <= 0 {
		panic("cache: Capacity must be > 0")
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	return &LRU[K, V]{
		m:       make(map[K]*node[K, V], opt.Capacity),
		maxsize: opt.Capacity,
		opt:     opt,
	}
}

// MaxSize returns the current capacity in entries.
func (c *LRU[K, V]) MaxSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxsize
}

// Grow raises the capacity to at least n entries. Capacity never
// shrinks, so independent callers can each request the minimum size
// they need without clobbering one another.
func (c *LRU[K, V]) Grow(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n > c.maxsize {
		c.maxsize = n
		c.full = false
	}
}

// Set inserts k→v as the most-recently-used entry, evicting the
// least-recently-used one if the container is at capacity.
//
// Set is insert-only: when k is already resident it does nothing. The
// stored value is not replaced and the entry is not promoted. Memoized
// computations are assumed deterministic per key, so a second Set for
// the same key carries no new information. Callers that need
// overwrite-in-place semantics should use FIFO, or Get before Set.
func (c *LRU[K, V]) Set(k K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.m[k]; exists {
		return
	}
	n := &node[K, V]{key: k, val: v}
	c.pushFront(n)
	c.m[k] = n

	if c.full || len(c.m) > c.maxsize {
		c.full = true
		c.evictLocked(c.head.prev)
	}
	c.opt.Metrics.Size(len(c.m))
}

// Get returns the value for k and promotes the entry to
// most-recently-used. When k is absent it returns the zero value and
// ErrNotFound. A hit increments the hit counter, a miss the miss
// counter.
func (c *LRU[K, V]) Get(k K) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.m[k]
	if !ok {
		c.misses.Add(1)
		c.opt.Metrics.Miss()
		var zero V
		return zero, ErrNotFound
	}
	c.moveToFront(n)
	c.hits.Add(1)
	c.opt.Metrics.Hit()
	return n.val, nil
}

// GetDefault returns the value for k, or def when k is absent.
// Counting and promotion behave exactly as in Get; only the miss
// result differs (def instead of an error).
func (c *LRU[K, V]) GetDefault(k K, def V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.m[k]
	if !ok {
		c.misses.Add(1)
		c.opt.Metrics.Miss()
		return def
	}
	c.moveToFront(n)
	c.hits.Add(1)
	c.opt.Metrics.Hit()
	return n.val
}

// GetOrLoad returns the value for k, loading it via Options.Loader on
// miss. Concurrent loads for the same key are coalesced so the Loader
// runs at most once per flight; the loaded value is inserted as the
// most-recently-used entry. If no Loader was configured, GetOrLoad
// returns ErrNoLoader.
func (c *LRU[K, V]) GetOrLoad(ctx context.Context, k K) (V, error) {
	// fast path
	if v, err := c.Get(k); err == nil {
		return v, nil
	}
	if c.opt.Loader == nil {
		var zero V
		return zero, ErrNoLoader
	}

	return c.sf.Do(ctx, k, func() (V, error) {
		// double-check after flight join
		if v, err := c.Get(k); err == nil {
			return v, nil
		}
		v, err := c.opt.Loader(ctx, k)
		if err == nil {
			c.Set(k, v)
		}
		return v, err
	})
}

// Contains reports whether k is resident. It does not promote the
// entry and does not touch the hit/miss counters.
func (c *LRU[K, V]) Contains(k K) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.m[k]
	return ok
}

// Keys returns the resident keys in unspecified order.
func (c *LRU[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]K, 0, len(c.m))
	for k := range c.m {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of resident entries.
func (c *LRU[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Clear removes every entry and resets the full flag. The
// hit/miss/eviction counters keep their values; OnEvict is not
// invoked for the discarded entries.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = make(map[K]*node[K, V], c.maxsize)
	c.head = nil
	c.full = false
	c.opt.Metrics.Size(0)
}

// Stats returns a snapshot of the hit/miss/eviction counters.
func (c *LRU[K, V]) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evicts.Load(),
	}
}

// -------------------- ring maintenance (mu held) --------------------

// pushFront links n as the new head. The first node references itself
// so the ring stays well formed with a single element.
func (c *LRU[K, V]) pushFront(n *node[K, V]) {
	if c.head == nil {
		n.prev, n.next = n, n
	} else {
		tail := c.head.prev
		n.prev, n.next = tail, c.head
		tail.next = n
		c.head.prev = n
	}
	c.head = n
}

// moveToFront promotes n to MRU in O(1). Already-head entries are left
// untouched, so repeated hits on the hottest key do no pointer work.
func (c *LRU[K, V]) moveToFront(n *node[K, V]) {
	if n == c.head {
		return
	}
	// detach
	n.prev.next = n.next
	n.next.prev = n.prev
	// relink in front of the current head
	tail := c.head.prev
	n.prev, n.next = tail, c.head
	tail.next = n
	c.head.prev = n
	c.head = n
}

// evictLocked unlinks n from the ring, deletes its key and fires the
// eviction counter, metric and callback.
func (c *LRU[K, V]) evictLocked(n *node[K, V]) {
	if n.next == n {
		c.head = nil
	} else {
		n.prev.next = n.next
		n.next.prev = n.prev
		if c.head == n {
			c.head = n.next
		}
	}
	n.prev, n.next = nil, nil
	delete(c.m, n.key)

	c.evicts.Add(1)
	c.opt.Metrics.Evict()
	if cb := c.opt.OnEvict; cb != nil {
		// Callbacks run under the lock; keep them lightweight.
		cb(n.key, n.val)
	}
}
