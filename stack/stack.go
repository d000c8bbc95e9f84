// Package stack provides a LIFO stack backed by a contiguous slice.
//
// Complexity: Push amortised O(1); Pop, Peek, Len O(1).
package stack

// Stack is a last-in, first-out container. The zero value is an empty stack.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack with room for capacity items.
func New[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push places v on top.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the top item; ok is false on an empty stack.
func (s *Stack[T]) Pop() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}
	v = s.items[n-1]
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return v, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}

	return s.items[len(s.items)-1], true
}

// Len returns the number of items.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Drain pops every item into a new slice, top first.
func (s *Stack[T]) Drain() []T {
	out := make([]T, 0, len(s.items))
	for !s.IsEmpty() {
		v, _ := s.Pop()
		out = append(out, v)
	}

	return out
}
