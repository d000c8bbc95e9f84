// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/geo"
)

func TestGrid(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.VertexCount())
	// 3·3 horizontal + 2·4 vertical links, both directions
	assert.Equal(t, 2*(9+8), g.EdgeCount())

	vs := g.Vertices()
	assert.Equal(t, geo.New("p0", 0, 0), vs[0])
	assert.Equal(t, geo.New("p5", 1, 1), vs[5])
	for _, e := range g.Neighbors(vs[5]) {
		assert.Equal(t, 1.0, e.Cost)
	}
	assert.Len(t, g.Neighbors(vs[5]), 4)
	assert.Len(t, g.Neighbors(vs[0]), 2)
}

func TestGrid_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Grid(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	// default graph capacity is 101 slots
	_, err = builder.BuildGraph(nil, nil, builder.Grid(11, 11))
	assert.ErrorIs(t, err, core.ErrGraphFull)

	_, err = builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomSparse(t *testing.T) {
	build := func() *core.Graph[geo.Location] {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithCapacity(61)},
			[]builder.BuilderOption{builder.WithSeed(8), builder.WithDetourFn(builder.UniformDetour(1.5))},
			builder.RandomSparse(30, 0.2, 50),
		)
		require.NoError(t, err)
		return g
	}
	g := build()
	assert.Equal(t, 30, g.VertexCount())
	assert.Positive(t, g.EdgeCount())
	assert.Equal(t, g.Stats(), build().Stats())

	for _, v := range g.Vertices() {
		for _, e := range g.Neighbors(v) {
			d := geo.Euclidean(v, e.To)
			assert.GreaterOrEqual(t, e.Cost, d)
			assert.LessOrEqual(t, e.Cost, 1.5*d)
			assert.NotEqual(t, v, e.To)
		}
	}
}

func TestRandomSparse_Errors(t *testing.T) {
	seed := []builder.BuilderOption{builder.WithSeed(1)}

	_, err := builder.BuildGraph(nil, seed, builder.RandomSparse(0, 0.5, 10))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, seed, builder.RandomSparse(5, 1.5, 10))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0.5, 10))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestWithNameScheme(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithNameScheme(func(i int) string { return fmt.Sprintf("cell-%02d", i) })},
		builder.Grid(1, 2),
	)
	require.NoError(t, err)
	assert.Equal(t, "cell-01", g.Vertices()[1].Name)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithNameScheme(nil) })
	assert.Panics(t, func() { builder.WithDetourFn(nil) })
	assert.Panics(t, func() { builder.UniformDetour(0.5) })
}

func TestDetourFns(t *testing.T) {
	assert.Equal(t, 1.0, builder.NoDetour(nil))
	assert.Equal(t, 1.0, builder.UniformDetour(3)(nil))
	assert.Equal(t, 1.0, builder.UniformDetour(1)(nil))
}
