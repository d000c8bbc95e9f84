package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/stack"
)

func TestStack_LIFO(t *testing.T) {
	s := stack.New[int](2)
	require.True(t, s.IsEmpty())

	for i := 1; i <= 5; i++ {
		s.Push(i)
	}
	require.Equal(t, 5, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, 5, top)

	v, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, 5, v)
	require.Equal(t, []int{4, 3, 2, 1}, s.Drain())
	require.True(t, s.IsEmpty())
}

func TestStack_EmptyAndZeroValue(t *testing.T) {
	var s stack.Stack[string]
	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)

	s.Push("a")
	assert.Equal(t, 1, s.Len())
	assert.Empty(t, stack.New[string](-3).Drain())
}
