package astar

import (
	"errors"
	"fmt"
	"math"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/hashtable"
	"github.com/katalvlaran/pathfinder/pqueue"
)

func TestComparePriority(t *testing.T) {
	nan := math.NaN()
	assert.Equal(t, -1, comparePriority(1, 2))
	assert.Equal(t, 1, comparePriority(2, 1))
	assert.Equal(t, 0, comparePriority(3, 3))
	assert.Equal(t, -1, comparePriority(math.Inf(1), nan))
	assert.Equal(t, 1, comparePriority(nan, math.Inf(-1)))
	assert.Equal(t, 0, comparePriority(nan, nan))
}

func TestFrontierOrder(t *testing.T) {
	q := pqueue.New[frontierItem[string]](frontierLess[string])
	push := func(v string, p float64, seq uint64) {
		q.Push(frontierItem[string]{vertex: v, priority: p, seq: seq})
	}
	push("nan1", math.NaN(), 0)
	push("b", 2, 1)
	push("a2", 1, 3)
	push("nan2", math.NaN(), 4)
	push("a1", 1, 2)
	push("inf", math.Inf(1), 5)

	var got []string
	for !q.IsEmpty() {
		it, _ := q.Pop()
		got = append(got, it.vertex)
	}
	assert.Equal(t, []string{"a1", "a2", "b", "inf", "nan1", "nan2"}, got)
}

func TestReconstructPath(t *testing.T) {
	cameFrom := hashtable.MustNew[string, string](8, hashtable.WithSeed(1))
	require.NoError(t, cameFrom.Insert("B", "A"))
	require.NoError(t, cameFrom.Insert("C", "B"))

	path, err := reconstructPath(cameFrom, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	path, err = reconstructPath(cameFrom, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestReconstructPath_Broken(t *testing.T) {
	cameFrom := hashtable.MustNew[string, string](8, hashtable.WithSeed(1))
	require.NoError(t, cameFrom.Insert("C", "B"))

	// B has no predecessor and is not start
	path, err := reconstructPath(cameFrom, "A", "C")
	assert.Nil(t, path)
	assert.ErrorIs(t, err, ErrBrokenPath)

	// a cycle that never reaches start
	require.NoError(t, cameFrom.Insert("B", "C"))
	path, err = reconstructPath(cameFrom, "A", "C")
	assert.Nil(t, path)
	assert.ErrorIs(t, err, ErrBrokenPath)
}

func TestOutcome(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, outcomeFound},
		{ErrNoPathFound, outcomeNoPath},
		{fmt.Errorf("%w: 3 expansions", ErrExpansionLimit), outcomeLimit},
		{fmt.Errorf("%w: start=x", ErrInvalidStartOrGoal), outcomeInvalid},
		{ErrNilGraph, outcomeInvalid},
		{ErrNilHeuristic, outcomeInvalid},
		{ErrBrokenPath, outcomeError},
		{errors.New("other"), outcomeError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, outcome(tc.err), "%v", tc.err)
	}
}

func counterValue(t *testing.T, label string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, searchTotal.WithLabelValues(label).Write(&m))

	return m.GetCounter().GetValue()
}

func TestSearch_RecordsMetrics(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddVertex(2))

	found, noPath := counterValue(t, outcomeFound), counterValue(t, outcomeNoPath)

	_, err := Search(g, 1, 1, ZeroHeuristic[int])
	require.NoError(t, err)
	_, err = Search(g, 1, 2, ZeroHeuristic[int])
	require.ErrorIs(t, err, ErrNoPathFound)

	assert.Equal(t, found+1, counterValue(t, outcomeFound))
	assert.Equal(t, noPath+1, counterValue(t, outcomeNoPath))
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	require.NotNil(t, o.Logger)
	assert.Zero(t, o.MaxExpansions)
	assert.Zero(t, o.TableCapacity)
	assert.Zero(t, o.Seed)
}
