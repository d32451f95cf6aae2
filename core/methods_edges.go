// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/SetSign/HasEdge/EdgeSign/
//       Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges with From < To, sorted by (From, To) asc.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import "sort"

// AddEdge inserts the undirected edge {a,b} with sign s.
// Missing endpoints are added as vertices.
//
// Errors: ErrBadSign, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b int64, s Sign) error {
	if !s.Valid() {
		return ErrBadSign
	}
	if a == b {
		return ErrLoopNotAllowed
	}
	g.AddVertex(a)
	g.AddVertex(b)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacency[a][b]; exists {
		return ErrMultiEdgeNotAllowed
	}
	g.adjacency[a][b] = s
	g.adjacency[b][a] = s
	g.edgeCount++

	return nil
}

// RemoveEdge deletes {a,b} and returns the sign it carried, so the caller
// can reinsert it unchanged.
//
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b int64) (Sign, error) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	s, ok := g.adjacency[a][b]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)
	g.edgeCount--

	return s, nil
}

// SetSign overwrites the sign of an existing edge {a,b}.
//
// Errors: ErrBadSign, ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) SetSign(a, b int64, s Sign) error {
	if !s.Valid() {
		return ErrBadSign
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.adjacency[a][b]; !ok {
		return ErrEdgeNotFound
	}
	g.adjacency[a][b] = s
	g.adjacency[b][a] = s

	return nil
}

// HasEdge reports whether {a,b} is an edge. Symmetric in a and b.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b int64) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// EdgeSign returns the sign of {a,b} and whether the edge exists.
// Complexity: O(1).
func (g *Graph) EdgeSign(a, b int64) (Sign, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	s, ok := g.adjacency[a][b]

	return s, ok
}

// Edges returns every edge once, as From < To, sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, row := range g.adjacency {
		for v, s := range row {
			if u < v {
				out = append(out, Edge{From: u, To: v, Sign: s})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}
