// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of g: vertices, edges and signs.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(WithCapacity(len(g.vertices)))
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}
	for u, row := range g.adjacency {
		cp := make(map[int64]Sign, len(row))
		for v, s := range row {
			cp[v] = s
		}
		clone.adjacency[u] = cp
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear removes all vertices and edges.
// Complexity: O(1) for map reallocation.
// Concurrency: acquires both write locks.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[int64]struct{})
	g.adjacency = make(map[int64]map[int64]Sign)
	g.edgeCount = 0
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
