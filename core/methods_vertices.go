// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and vertex-level queries (AddVertex, HasVertex,
//       RemoveVertex, Vertices, VertexCount, Degree).
// Determinism:
//   - Vertices() returns IDs sorted ascending.
// Concurrency:
//   - Mutations take muVert then muEdgeAdj write locks.

package core

import "sort"

// AddVertex inserts id if absent. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int64) {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = struct{}{}

	g.muEdgeAdj.Lock()
	g.ensureAdj(id)
	g.muEdgeAdj.Unlock()
}

// HasVertex reports whether id is a vertex of g.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes id and every edge incident to it.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(deg(id)).
func (g *Graph) RemoveVertex(id int64) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	for nbr := range g.adjacency[id] {
		delete(g.adjacency[nbr], id)
		g.edgeCount--
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges currently incident to id.
//
// The value tracks the live edge set: while an edge is temporarily removed
// the degrees of both endpoints are one lower.
//
// Complexity: O(1).
func (g *Graph) Degree(id int64) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[id]), nil
}

// ensureAdj initializes the adjacency row of id. Caller holds muEdgeAdj.
func (g *Graph) ensureAdj(id int64) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int64]Sign)
	}
}
