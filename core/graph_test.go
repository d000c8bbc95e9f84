// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathfinder/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph[string]
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph[string](core.WithSeed(1))
	for _, v := range []string{"one", "two", "three", "five", "six"} {
		s.Require().NoError(s.g.AddVertex(v))
	}
}

func (s *GraphSuite) TestAddVertexDuplicate() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddVertex("one"), core.ErrVertexAlreadyExists)
	require.Equal(5, s.g.VertexCount())
	require.Equal([]string{"one", "two", "three", "five", "six"}, s.g.Vertices())
}

func (s *GraphSuite) TestHasVertex() {
	require := require.New(s.T())
	require.True(s.g.HasVertex("three"))
	require.False(s.g.HasVertex("four"))
}

func (s *GraphSuite) TestAddEdgeDirected() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("one", "two", 3))
	require.NoError(s.g.AddEdge("two", "three", 4))
	require.NoError(s.g.AddEdge("five", "three", 2))
	require.NoError(s.g.AddEdge("five", "one", 1))

	require.Equal([]core.Edge[string]{{To: "two", Cost: 3}}, s.g.Neighbors("one"))
	require.Equal([]core.Edge[string]{{To: "three", Cost: 2}, {To: "one", Cost: 1}}, s.g.Neighbors("five"))
	// directedness: nothing flows back
	require.Empty(s.g.Neighbors("three"))
	require.Empty(s.g.Neighbors("six"))
	require.Equal(4, s.g.EdgeCount())
}

func (s *GraphSuite) TestAddEdgeUnknownEndpoint() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddEdge("four", "two", 3), core.ErrFromNotFound)
	require.ErrorIs(s.g.AddEdge("two", "four", 3), core.ErrToNotFound)
	// both unknown: from is checked first
	require.ErrorIs(s.g.AddEdge("x", "y", 1), core.ErrFromNotFound)

	// graph unchanged
	require.Equal(0, s.g.EdgeCount())
	require.Empty(s.g.Neighbors("two"))
	require.False(s.g.HasVertex("four"))
}

func (s *GraphSuite) TestAddEdgeBadWeight() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddEdge("one", "two", -1), core.ErrBadWeight)
	require.ErrorIs(s.g.AddEdge("one", "two", math.NaN()), core.ErrBadWeight)
	require.NoError(s.g.AddEdge("one", "two", 0))
	require.NoError(s.g.AddEdge("one", "two", math.Inf(1)))
}

func (s *GraphSuite) TestAddEdgeEndpointsCheckedBeforeWeight() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddEdge("four", "two", -1), core.ErrFromNotFound)
	require.ErrorIs(s.g.AddEdge("two", "four", math.NaN()), core.ErrToNotFound)
	require.Equal(0, s.g.EdgeCount())
}

func (s *GraphSuite) TestParallelEdgesAndLoops() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("one", "two", 3))
	require.NoError(s.g.AddEdge("one", "two", 7))
	require.NoError(s.g.AddEdge("six", "six", 1))

	w, err := s.g.Weight("one", "two")
	require.NoError(err)
	require.Equal([]float64{3, 7}, w)
	require.Equal(2, s.g.OutDegree("one"))

	w, err = s.g.Weight("six", "six")
	require.NoError(err)
	require.Equal([]float64{1}, w)

	st := s.g.Stats()
	require.Equal(core.GraphStats{VertexCount: 5, EdgeCount: 3, Capacity: 101, LoopCount: 1}, st)
}

func (s *GraphSuite) TestWeightErrors() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("one", "two", 3))

	_, err := s.g.Weight("four", "two")
	require.ErrorIs(err, core.ErrFromNotFound)
	_, err = s.g.Weight("one", "four")
	require.ErrorIs(err, core.ErrToNotFound)
	_, err = s.g.Weight("one", "five")
	require.ErrorIs(err, core.ErrEdgeNotFound)
	_, err = s.g.Weight("two", "one")
	require.ErrorIs(err, core.ErrEdgeNotFound, "reverse edge must not exist")

	require.True(s.g.HasEdge("one", "two"))
	require.False(s.g.HasEdge("two", "one"))
}

func (s *GraphSuite) TestNeighborsReturnsCopy() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("one", "two", 3))

	n := s.g.Neighbors("one")
	n[0].Cost = 100
	require.Equal(3.0, s.g.Neighbors("one")[0].Cost)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestGraphFull(t *testing.T) {
	g := core.NewGraph[int](core.WithCapacity(3), core.WithSeed(2))
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	err := g.AddVertex(3)
	require.ErrorIs(t, err, core.ErrGraphFull)
	require.Equal(t, 3, g.VertexCount())
	require.Len(t, g.Vertices(), 3)
	require.Equal(t, 3, g.Capacity())
}

func TestWithCapacity_Panics(t *testing.T) {
	require.Panics(t, func() { core.WithCapacity(0) })
}

type cell struct{ X, Y int }

func TestGraph_StructVertices(t *testing.T) {
	g := core.NewGraph[cell](core.WithCapacity(64))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			require.NoError(t, g.AddVertex(cell{x, y}))
		}
	}
	for x := 0; x < 3; x++ {
		require.NoError(t, g.AddEdge(cell{x, 0}, cell{x + 1, 0}, 1))
	}
	require.Len(t, g.Neighbors(cell{0, 0}), 1)
	require.Equal(t, cell{1, 0}, g.Neighbors(cell{0, 0})[0].To)
	require.Empty(t, g.Neighbors(cell{9, 9}))
	require.Equal(t, fmt.Sprint(cell{0, 0}), fmt.Sprint(g.Vertices()[0]))
}
