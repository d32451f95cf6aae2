// SPDX-License-Identifier: MIT

package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/signedge/builder"
	"github.com/katalvlaran/signedge/core"
)

func TestBuildGraph_Topologies(t *testing.T) {
	cases := []struct {
		name      string
		con       builder.Constructor
		vertices  int
		edges     int
		maxDegree int
	}{
		{"path5", builder.Path(5), 5, 4, 2},
		{"cycle6", builder.Cycle(6), 6, 6, 2},
		{"star7", builder.Star(7), 7, 6, 6},
		{"complete5", builder.Complete(5), 5, 10, 4},
		{"sparse_full", builder.RandomSparse(4, 1), 4, 6, 3},
		{"sparse_empty", builder.RandomSparse(4, 0), 4, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.con)
			require.NoError(t, err)
			st := g.Stats()
			assert.Equal(t, tc.vertices, st.VertexCount)
			assert.Equal(t, tc.edges, st.EdgeCount)
			assert.Equal(t, tc.maxDegree, st.MaxDegree)
			assert.Equal(t, tc.edges, st.PositiveEdges, "default sign is positive")
		})
	}
}

func TestBuildGraph_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Path(1))
	assert.True(t, errors.Is(err, builder.ErrTooFewVertices))

	_, err = builder.BuildGraph(nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_SignsAndComposition(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSignFn(builder.AlternatingSign())},
		builder.Path(5),
	)
	require.NoError(t, err)
	want := []core.Edge{
		{From: 0, To: 1, Sign: core.Positive},
		{From: 1, To: 2, Sign: core.Negative},
		{From: 2, To: 3, Sign: core.Positive},
		{From: 3, To: 4, Sign: core.Negative},
	}
	assert.Equal(t, want, g.Edges())

	// overlaying a complete graph on a cycle keeps the cycle edges and fills the rest
	g, err = builder.BuildGraph(
		[]builder.BuilderOption{builder.WithIDOffset(10)},
		builder.Cycle(4), builder.Complete(4),
	)
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.HasVertex(13))
	assert.False(t, g.HasVertex(0))
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithNegativeRatio(0.3)}
	g1, err := builder.BuildGraph(opts, builder.RandomSparse(40, 0.2))
	require.NoError(t, err)

	opts = []builder.BuilderOption{builder.WithSeed(7), builder.WithNegativeRatio(0.3)}
	g2, err := builder.BuildGraph(opts, builder.RandomSparse(40, 0.2))
	require.NoError(t, err)

	assert.Equal(t, g1.Edges(), g2.Edges())
	assert.Positive(t, g1.EdgeCount())
}

func TestSignFns(t *testing.T) {
	assert.Panics(t, func() { builder.ConstantSign(0) })
	assert.Panics(t, func() { builder.WithNegativeRatio(-0.1) })
	assert.Panics(t, func() { builder.WithSignFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })

	assert.Equal(t, core.Negative, builder.ConstantSign(core.Negative)(nil))
	assert.Equal(t, core.Negative, builder.BernoulliSign(1)(nil))
	assert.Equal(t, core.Positive, builder.BernoulliSign(0.2)(nil))
}
