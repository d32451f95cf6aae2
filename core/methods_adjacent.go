// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, Neighbors).
// Determinism:
//   - NeighborIDs() returns IDs sorted asc.
//   - Neighbors() returns edges sorted by neighbor ID asc, oriented From == id.

package core

import "sort"

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
//
// Errors: ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id int64) ([]int64, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	row := g.adjacency[id]
	out := make([]int64, 0, len(row))
	for nbr := range row {
		out = append(out, nbr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// Neighbors returns the incident edges of id, each oriented as
// From == id, sorted by the neighbor ID.
//
// Errors: ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int64) ([]Edge, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	row := g.adjacency[id]
	out := make([]Edge, 0, len(row))
	for nbr, s := range row {
		out = append(out, Edge{From: id, To: nbr, Sign: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}
