package pqueue

import "golang.org/x/exp/constraints"

// PriorityQueue is a min-priority queue: Pop always yields the element that
// orders first. It is a thin facade over MinHeap.
type PriorityQueue[T any] struct {
	heap *MinHeap[T]
}

// New returns an empty queue ordered by less.
func New[T any](less Less[T]) *PriorityQueue[T] {
	return &PriorityQueue[T]{heap: NewMinHeap(less)}
}

// NewOrderedQueue returns an empty queue over an ordered type.
func NewOrderedQueue[T constraints.Ordered]() *PriorityQueue[T] {
	return &PriorityQueue[T]{heap: NewOrdered[T]()}
}

// Push enqueues v. O(log n).
func (q *PriorityQueue[T]) Push(v T) { q.heap.Push(v) }

// Pop dequeues the minimum. O(log n).
func (q *PriorityQueue[T]) Pop() (T, bool) { return q.heap.Pop() }

// Peek returns the minimum without dequeuing it. O(1).
func (q *PriorityQueue[T]) Peek() (T, bool) { return q.heap.Peek() }

// Len returns the number of queued elements.
func (q *PriorityQueue[T]) Len() int { return q.heap.Len() }

// IsEmpty reports whether the queue is empty.
func (q *PriorityQueue[T]) IsEmpty() bool { return q.heap.IsEmpty() }
