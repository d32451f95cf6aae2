// SPDX-License-Identifier: MIT

// Package core provides the in-memory signed graph used by every other
// signedge package.
//
// The Graph G = (V,E) is undirected and simple: no self-loops, no parallel
// edges. Every edge carries a Sign (+1 trust, −1 distrust); zero signs are
// rejected on insertion.
//
// Storage:
//
//   - vertices: set of int64 IDs
//   - adjacency: adjacency[u][v] = sign, mirrored for v→u
//
// so edge lookup, insertion, removal and Degree are all O(1).
//
// Concurrency:
//
// Two sync.RWMutex locks are used, muVert for the vertex set and muEdgeAdj
// for adjacency, always acquired in that order. Readers may run alongside
// each other; mutations are exclusive. Higher layers (features, pipeline)
// still serialize their leave-one-out probes: the locks keep single calls
// consistent, they do not make a remove→compute→restore sequence atomic.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int64)                   // O(1), idempotent
//	HasVertex(id int64) bool              // O(1)
//	RemoveVertex(id int64) error          // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(a, b int64, s Sign) error     // O(1)
//	RemoveEdge(a, b int64) (Sign, error)  // O(1), returns the removed sign
//	SetSign(a, b int64, s Sign) error     // O(1)
//	HasEdge(a, b int64) bool              // O(1)
//	EdgeSign(a, b int64) (Sign, bool)     // O(1)
//
//	// Query
//	Degree(id int64) (int, error)         // O(1)
//	NeighborIDs(id int64) ([]int64, error)// O(d log d), sorted asc
//	Vertices() []int64                    // O(V log V), sorted asc
//	Edges() []Edge                        // O(E log E), canonical From<To, sorted
//
//	// Maintenance
//	Clone() *Graph                        // O(V+E)
//	Clear()                               // O(1)
//	Stats() *GraphStats                   // O(V+E)
//
// Errors:
//
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadSign             – sign other than +1/−1
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – edge already present
package core
