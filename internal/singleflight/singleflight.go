// Package singleflight coalesces concurrent calls for the same key so
// the underlying work runs at most once per flight.
package singleflight

import (
	"context"
	"sync"
)

// Group coalesces concurrent function calls for the same key K so that
// the supplied fn is executed at most once. Other concurrent callers
// wait for the shared result.
//
// Concurrency notes:
//   - The first caller for a given key becomes the leader and runs fn.
//   - Followers wait on the flight's done channel. Publishing
//     (val, err) happens-before close(done), so reads after <-done
//     observe the final values.
//   - Cancelling ctx in a follower unblocks only that follower; it
//     does NOT cancel the leader's fn. If the work itself must be
//     cancellable, pass ctx into fn and handle it there.
type Group[K comparable, V any] struct {
	mu sync.Mutex
	m  map[K]*flight[V]
}

type flight[V any] struct {
	done chan struct{} // closed when val/err are published
	val  V
	err  error
}

// Do runs fn once for the given key. Concurrent calls with the same
// key wait for the shared result. If ctx is cancelled in a follower,
// that follower returns ctx.Err() while the leader continues.
func (g *Group[K, V]) Do(ctx context.Context, key K, fn func() (V, error)) (V, error) {
	g.mu.Lock()
	if g.m == nil {
		g.m = make(map[K]*flight[V])
	}
	if f, ok := g.m[key]; ok {
		// An in-flight call exists — wait (respecting ctx).
		done := f.done
		g.mu.Unlock()

		select {
		case <-done:
			return f.val, f.err
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err()
		}
	}

	// We are the leader for this key.
	f := &flight[V]{done: make(chan struct{})}
	g.m[key] = f
	g.mu.Unlock()

	// Execute fn outside the lock.
	v, err := fn()

	// Publish the result and wake followers.
	f.val, f.err = v, err
	close(f.done)

	// Remove the in-flight marker.
	g.mu.Lock()
	delete(g.m, key)
	g.mu.Unlock()

	return v, err
}
