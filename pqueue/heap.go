// Package pqueue implements an array-backed binary min-heap and a priority
// queue on top of it.
//
// The heap stores a complete binary tree in a slice:
//
//	parent(i) = (i - 1) / 2
//	left(i)   = 2*i + 1
//	right(i)  = 2*i + 2
//
// and maintains data[i] ≤ data[left(i)], data[right(i)] under the
// caller-supplied order before and after every Push and Pop.
//
// Complexity:
//
//   - Push, Pop: O(log n).
//   - Peek, Len, IsEmpty: O(1).
//
// Ties are broken arbitrarily: the heap is not stable. Callers that need
// deterministic tie-breaking encode a secondary key in their order.
package pqueue

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Less reports whether a must be popped before b. It must define a strict
// weak order; for float keys this means deciding where NaN goes.
type Less[T any] func(a, b T) bool

// MinHeap is a binary min-heap of T ordered by less.
type MinHeap[T any] struct {
	data []T
	less Less[T]
}

// NewMinHeap returns an empty heap ordered by less.
// Panics if less is nil.
func NewMinHeap[T any](less Less[T]) *MinHeap[T] {
	if less == nil {
		panic("pqueue: nil Less")
	}

	return &MinHeap[T]{less: less}
}

// NewOrdered returns a heap over an ordered type using cmp.Less, which
// places NaN before every other float.
func NewOrdered[T constraints.Ordered]() *MinHeap[T] {
	return NewMinHeap[T](cmp.Less[T])
}

// Len returns the number of elements.
func (h *MinHeap[T]) Len() int { return len(h.data) }

// IsEmpty reports whether Len() == 0.
func (h *MinHeap[T]) IsEmpty() bool { return len(h.data) == 0 }

// Peek returns the minimum without removing it; ok is false on an empty heap.
func (h *MinHeap[T]) Peek() (v T, ok bool) {
	if len(h.data) == 0 {
		return v, false
	}

	return h.data[0], true
}

// Push appends v and sifts it up to restore the heap property.
func (h *MinHeap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the minimum; ok is false on an empty heap.
//
// The root is swapped with the last element, the last element is cut off
// (it is the minimum), then the new root sifts down.
func (h *MinHeap[T]) Pop() (v T, ok bool) {
	n := len(h.data)
	if n == 0 {
		return v, false
	}

	last := n - 1
	h.data[0], h.data[last] = h.data[last], h.data[0]
	v = h.data[last]

	var zero T
	h.data[last] = zero // drop the reference held by the backing array
	h.data = h.data[:last]

	if len(h.data) > 0 {
		h.siftDown(0)
	}

	return v, true
}

// siftUp moves data[i] towards the root while it is smaller than its parent.
func (h *MinHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[i], h.data[parent]) {
			break // heap property restored
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

// siftDown moves data[i] towards the leaves, swapping with the smaller child.
func (h *MinHeap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.less(h.data[left], h.data[smallest]) {
			smallest = left
		}
		if right < n && h.less(h.data[right], h.data[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}
