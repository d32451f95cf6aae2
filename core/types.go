// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sign, Edge, Graph, GraphOption, sentinel errors and NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadSign indicates a sign other than Positive or Negative.
	ErrBadSign = errors.New("core: edge sign must be +1 or -1")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates an edge between the same endpoints already exists.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Sign is the polarity of an edge: Positive (trust) or Negative (distrust).
type Sign int8

const (
	// Negative marks a distrust edge.
	Negative Sign = -1

	// Positive marks a trust edge.
	Positive Sign = 1
)

// Valid reports whether s is Positive or Negative.
func (s Sign) Valid() bool { return s == Positive || s == Negative }

// Int returns s as a plain int, convenient for sign arithmetic.
func (s Sign) Int() int { return int(s) }

// String returns "pos" or "neg"; anything else renders as "invalid".
func (s Sign) String() string {
	switch s {
	case Positive:
		return "pos"
	case Negative:
		return "neg"
	default:
		return "invalid"
	}
}

// Edge is a value snapshot of one undirected signed edge.
//
// Edges() always reports From < To so that a given edge has exactly one
// representation.
type Edge struct {
	From int64
	To   int64
	Sign Sign
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the internal maps for roughly n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the signed, undirected, simple in-memory graph.
//
// muVert protects vertices; muEdgeAdj protects adjacency and edgeCount.
// Lock order is always muVert → muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards adjacency and edgeCount

	capacity int // construction-time sizing hint

	vertices map[int64]struct{}

	// adjacency[u][v] = sign of edge {u,v}; mirrored so adjacency[v][u] holds the same sign.
	adjacency map[int64]map[int64]Sign
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (plus the optional capacity pre-allocation).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[int64]struct{}, g.capacity)
	g.adjacency = make(map[int64]map[int64]Sign, g.capacity)

	return g
}
