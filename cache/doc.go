// Package cache provides two bounded, generic, thread-safe key/value
// containers for memoizing expensive computations:
//
//   - LRU: evicts the least-recently-used entry when full. Every hit
//     promotes the entry to most-recently-used, so recency-skewed
//     workloads keep their working set resident.
//   - FIFO: evicts the oldest-inserted entry when full. No promotion
//     bookkeeping, so each operation is cheaper; best for small working
//     sets with few lookups.
//
// Design
//
//   - Concurrency: each container owns a single RWMutex guarding its
//     map and ordering structure. Mutating operations (Set, Clear, the
//     promotion side of LRU lookups, eviction) hold the write lock for
//     their full body; Contains, Keys and Len take the read lock.
//     Operations never block on anything but that lock: no I/O, no
//     background goroutines, no TTLs.
//
//   - Storage (LRU): a map[K]*node for lookups plus an intrusive
//     circular doubly linked ring ordered by recency. The head is the
//     most-recently-used entry and head.prev is the least-recently-used
//     one, so both promotion and eviction are O(1) pointer fixes.
//
//   - Storage (FIFO): a map[K]*list.Element plus a linked list in
//     insertion order. Overwriting an existing key keeps its position;
//     the front of the list is always the eviction candidate.
//
//   - Statistics: hits, misses and evictions are cache-line-padded
//     atomic counters, exact even under concurrent access. Read them
//     with Stats. Clear empties the container but keeps the counters.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     NoopMetrics is the default; plug the metrics/prom adapter to
//     export Prometheus counters.
//
//   - Callbacks: Options.OnEvict(k, v) runs for every capacity
//     eviction, under the lock. Clear does not invoke it.
//
// Basic usage
//
//	c := cache.NewLRU[string, int](cache.Options[string, int]{Capacity: 1024})
//	c.Set("a", 1)
//	if v, err := c.Get("a"); err == nil {
//	    _ = v // use value
//	}
//	v := c.GetDefault("b", -1) // -1, counted as a miss
//
// Memoizing a slow function
//
//	c := cache.NewLRU[string, string](cache.Options[string, string]{
//	    Capacity: 1024,
//	    Loader: func(ctx context.Context, k string) (string, error) {
//	        return slowRender(ctx, k)
//	    },
//	})
//	v, err := c.GetOrLoad(ctx, "key") // concurrent loads are coalesced
//
// Choosing a variant
//
// Pick LRU when new keys are a good predictor of subsequent keys and
// lookups dominate. Pick FIFO when the cache is small and rarely read;
// it skips the promotion work entirely.
//
// A note on LRU.Set: it is insert-only. Setting a key that is already
// present is a no-op; see the method documentation.
package cache
