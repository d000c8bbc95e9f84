package astar

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/hashtable"
	"github.com/katalvlaran/pathfinder/stack"
)

// reconstructPath walks cameFrom from goal back to start and returns the
// vertices in start→goal order.
//
// A vertex without a predecessor (other than start), or a chain longer than
// the number of recorded predecessors, yields ErrBrokenPath.
//
// Complexity: O(L) for a path of L vertices.
func reconstructPath[T comparable](cameFrom *hashtable.Table[T, T], start, goal T) ([]T, error) {
	limit := cameFrom.Len() + 1
	s := stack.New[T](limit)
	current := goal
	s.Push(current)
	for current != start {
		prev, err := cameFrom.Get(current)
		if err != nil {
			return nil, fmt.Errorf("%w: no predecessor recorded for %v", ErrBrokenPath, current)
		}
		s.Push(prev)
		if s.Len() > limit {
			return nil, fmt.Errorf("%w: cycle through %v", ErrBrokenPath, prev)
		}
		current = prev
	}

	return s.Drain(), nil
}
