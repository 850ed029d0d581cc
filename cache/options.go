package cache

import "context"

// Options configures a container. Zero values are safe except
// Capacity, which is required; NewLRU and NewFIFO panic when it is
// not positive (a cache that can hold nothing is a configuration
// error, not a runtime condition).
type Options[K comparable, V any] struct {
	// Capacity is the entry count limit. Eviction keeps the resident
	// entry count at or below this value; it is never exceeded and
	// never reported as an error. LRU.Grow can raise it later.
	Capacity int

	// Loader fetches a value on miss. Used by LRU.GetOrLoad; ignored
	// by FIFO.
	Loader func(ctx context.Context, k K) (V, error)

	// OnEvict is called for every capacity eviction, under the
	// instance lock; keep callbacks lightweight. Clear does not
	// invoke it.
	OnEvict func(k K, v V)

	// Metrics receives observability signals. Nil => NoopMetrics.
	Metrics Metrics
}

// Stats is a point-in-time snapshot of a container's counters.
// The counters only ever increase; Clear does not reset them.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
}
