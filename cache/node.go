package cache

// node is an element of the LRU's intrusive recency ring.
// The ring is circular: the head is the most-recently-used entry and
// head.prev is the least-recently-used one, so both ends are reachable
// in O(1) without a separate tail pointer. A ring with a single entry
// references itself in both directions.
type node[K comparable, V any] struct {
	key K
	val V

	prev *node[K, V] // more recent neighbour (head.prev wraps to the tail)
	next *node[K, V] // less recent neighbour
}
