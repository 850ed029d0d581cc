// Package list implements a generic doubly linked list used by the
// FIFO container to track insertion order.
package list

// Element is a list element. Value is addressable through the pointer
// returned on insertion, so callers can update it in place without
// relinking.
type Element[V any] struct {
	Value V

	next   *Element[V]
	prev   *Element[V]
	isRoot bool
}

// Next returns the next list element or nil if e is the last element.
func (e *Element[V]) Next() *Element[V] {
	if e.next.isRoot {
		return nil
	}
	return e.next
}

// Prev returns the previous list element or nil if e is the first element.
func (e *Element[V]) Prev() *Element[V] {
	if e.prev.isRoot {
		return nil
	}
	return e.prev
}

// List is a doubly linked list with a sentinel root element.
type List[V any] struct {
	n    int
	root Element[V]
}

// New returns an empty list.
func New[V any]() *List[V] {
	l := new(List[V])
	l.root.isRoot = true
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int { return l.n }

// Front returns the first element or nil if the list is empty.
func (l *List[V]) Front() *Element[V] {
	if l.root.next == &l.root {
		return nil
	}
	return l.root.next
}

// Back returns the last element or nil if the list is empty.
func (l *List[V]) Back() *Element[V] {
	if l.root.prev == &l.root {
		return nil
	}
	return l.root.prev
}

// PushFront inserts a new element with value v at the front and
// returns it.
func (l *List[V]) PushFront(v V) *Element[V] {
	return l.insert(&Element[V]{Value: v}, &l.root)
}

// PushBack inserts a new element with value v at the back and
// returns it.
func (l *List[V]) PushBack(v V) *Element[V] {
	return l.insert(&Element[V]{Value: v}, l.root.prev)
}

// Remove removes e from the list and returns its value.
// e must be an element of this list.
func (l *List[V]) Remove(e *Element[V]) V {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
	l.n--
	return e.Value
}

// insert places e after at.
func (l *List[V]) insert(e, at *Element[V]) *Element[V] {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	l.n++
	return e
}
