package astar

import "cmp"

// frontierItem is one entry of the open set. The same vertex may be queued
// several times with decreasing cost; only the cheapest entry is expanded.
type frontierItem[T comparable] struct {
	vertex   T
	cost     float64 // costSoFar of vertex when the item was pushed
	priority float64 // cost + h(vertex, goal)
	seq      uint64  // push order, breaks priority ties
}

// frontierLess orders items by ascending priority, NaN after every number,
// then by push order.
func frontierLess[T comparable](a, b frontierItem[T]) bool {
	if c := comparePriority(a.priority, b.priority); c != 0 {
		return c < 0
	}

	return a.seq < b.seq
}

// comparePriority is cmp.Compare with NaN moved to the end.
func comparePriority(x, y float64) int {
	xNaN, yNaN := x != x, y != y
	switch {
	case xNaN && yNaN:
		return 0
	case xNaN:
		return 1
	case yNaN:
		return -1
	}

	return cmp.Compare(x, y)
}
