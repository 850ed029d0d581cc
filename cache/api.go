package cache

import "errors"

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("cache: key not found")

// ErrNoLoader is returned by LRU.GetOrLoad when no Loader was
// configured in Options.
var ErrNoLoader = errors.New("cache: no Loader provided")

// Cache is the surface shared by both containers (LRU and FIFO).
// All methods are safe for concurrent use by multiple goroutines.
//
// Typical complexity for operations is O(1) expected:
// a map lookup plus a constant amount of link adjustments under the
// instance lock.
type Cache[K comparable, V any] interface {
	// Set inserts k→v, evicting one entry if the container is at
	// capacity. See the concrete types for the exact existing-key
	// semantics: LRU.Set is insert-only, FIFO.Set overwrites in place.
	Set(k K, v V)

	// Get returns the value for k, or the zero value and ErrNotFound
	// when k is absent. Touches the hit/miss counters; on an LRU it
	// also promotes the entry to most-recently-used.
	Get(k K) (V, error)

	// GetDefault returns the value for k, or def when k is absent.
	// It never returns an error. On an LRU it counts and promotes
	// like Get; on a FIFO it touches no counters at all.
	GetDefault(k K, def V) V

	// Contains reports whether k is resident. It never touches the
	// counters and never changes eviction order.
	Contains(k K) bool

	// Keys returns the resident keys in unspecified order.
	// Intended for diagnostics and tests.
	Keys() []K

	// Len returns the number of resident entries.
	Len() int

	// MaxSize returns the current capacity in entries.
	MaxSize() int

	// Clear removes every entry. Hit/miss/eviction counters keep
	// their values; OnEvict is not invoked.
	Clear()

	// Stats returns a snapshot of the hit/miss/eviction counters.
	Stats() Stats
}

// Compile-time checks: both containers satisfy Cache.
var (
	_ Cache[string, int] = (*LRU[string, int])(nil)
	_ Cache[string, int] = (*FIFO[string, int])(nil)
)
