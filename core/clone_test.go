// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/signedge/core"
)

// TestGraph_CloneIsDeep verifies that mutating a clone leaves the source intact.
func TestGraph_CloneIsDeep(t *testing.T) {
	g := newSquare(t)
	c := g.Clone()
	require.Equal(t, g.Edges(), c.Edges())

	_, err := c.RemoveEdge(VertexA, VertexB)
	require.NoError(t, err)
	require.NoError(t, c.SetSign(VertexB, VertexC, core.Negative))

	assert.True(t, g.HasEdge(VertexA, VertexB))
	s, _ := g.EdgeSign(VertexB, VertexC)
	assert.Equal(t, core.Positive, s)
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 3, c.EdgeCount())
}

// TestGraph_StatsAndClear checks the summary snapshot and Clear.
func TestGraph_StatsAndClear(t *testing.T) {
	g := newSquare(t)
	g.AddVertex(42)

	st := g.Stats()
	assert.Equal(t, 5, st.VertexCount)
	assert.Equal(t, 4, st.EdgeCount)
	assert.Equal(t, 3, st.PositiveEdges)
	assert.Equal(t, 1, st.NegativeEdges)
	assert.Equal(t, 2, st.MaxDegree)
	assert.Equal(t, 1, st.IsolatedCount)

	g.Clear()
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Edges())
}

// TestGraph_ConcurrentReaders runs readers alongside a remove/restore writer.
func TestGraph_ConcurrentReaders(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(64))
	for i := int64(0); i < 32; i++ {
		require.NoError(t, g.AddEdge(i, i+1, core.Positive))
	}

	const readers = 8
	var wg sync.WaitGroup
	errCh := make(chan error, readers)
	wg.Add(readers + 1)
	go func() {
		defer wg.Done()
		for r := 0; r < 100; r++ {
			s, err := g.RemoveEdge(5, 6)
			if err != nil {
				errCh <- err
				return
			}
			if err = g.AddEdge(5, 6, s); err != nil {
				errCh <- err
				return
			}
		}
	}()
	for i := 0; i < readers; i++ {
		go func(id int) {
			defer wg.Done()
			for r := 0; r < 100; r++ {
				if _, err := g.NeighborIDs(int64(id)); err != nil {
					errCh <- fmt.Errorf("reader %d: %w", id, err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Error(err)
	}
	assert.Equal(t, 32, g.EdgeCount())
}

func TestSign_String(t *testing.T) {
	assert.Equal(t, "pos", core.Positive.String())
	assert.Equal(t, "neg", core.Negative.String())
	assert.Equal(t, "invalid", core.Sign(0).String())
	assert.Equal(t, -1, core.Negative.Int())
}
