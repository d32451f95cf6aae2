// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries of a Graph.

package core

// GraphStats is a read-only snapshot of graph sizes and sign balance.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	PositiveEdges int
	NegativeEdges int
	MaxDegree     int
	IsolatedCount int // vertices with degree 0
}

// Stats produces a snapshot of counts and degree extremes.
//
// Implementation:
//   - Stage 1: snapshot vertex count under muVert.
//   - Stage 2: scan adjacency once under muEdgeAdj.
//
// Each undirected edge is seen twice in adjacency; only u < v is counted.
//
// Complexity: Time O(V+E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{VertexCount: len(g.vertices)}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = g.edgeCount
	for u, row := range g.adjacency {
		if d := len(row); d > stats.MaxDegree {
			stats.MaxDegree = d
		} else if d == 0 {
			stats.IsolatedCount++
		}
		for v, s := range row {
			if u >= v {
				continue
			}
			if s == Positive {
				stats.PositiveEdges++
			} else {
				stats.NegativeEdges++
			}
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
