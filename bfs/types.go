// SPDX-License-Identifier: MIT

// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrTargetVertexNotFound is returned when the target ID is absent.
	ErrTargetVertexNotFound = errors.New("bfs: target vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id int64, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// PathLimit, if > 0, caps how many shortest paths AllShortestPaths
	// materializes. 0 means all of them.
	PathLimit int

	// target, when set, ends the search once its whole layer is settled.
	target    int64
	hasTarget bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - all shortest paths (PathLimit == 0)
//   - no-op OnVisit hook
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:     context.Background(),
		OnVisit: func(int64, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id int64, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithPathLimit caps the number of shortest paths materialized.
//
//	n > 0: at most n paths
//	n == 0: all paths
//	n < 0: invalid option → ErrOptionViolation
func WithPathLimit(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: PathLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.PathLimit = n
	}
}

// WithTarget ends the traversal as soon as every vertex at the target's
// depth has been discovered, so Preds of the target are complete.
func WithTarget(id int64) Option {
	return func(o *BFSOptions) {
		o.target = id
		o.hasTarget = true
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex ID to its distance (in edges) from the start.
//   - Parent: map from vertex ID to its first predecessor in the BFS tree.
//   - Preds: map from vertex ID to every predecessor on some shortest path.
//   - Truncated: true if MaxDepth pruned at least one undiscovered vertex.
type BFSResult struct {
	Order     []int64
	Depth     map[int64]int
	Parent    map[int64]int64
	Preds     map[int64][]int64
	Truncated bool
}

// PathTo reconstructs one shortest path from the start vertex to dest
// by following Parent links.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest int64) ([]int64, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	// build reversed path
	path := []int64{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	reverse(path)

	return path, nil
}

// PathStatus classifies the outcome of a shortest-path query.
type PathStatus int

const (
	// PathFound means at least one shortest path within MaxDepth exists.
	PathFound PathStatus = iota

	// PathUnreachable means the target lies in a different component.
	PathUnreachable

	// PathTooLong means the target was not reached within MaxDepth while the
	// search was still expanding; it lies further away or is unreachable.
	PathTooLong
)

// String returns a short lowercase label for s.
func (s PathStatus) String() string {
	switch s {
	case PathFound:
		return "found"
	case PathUnreachable:
		return "unreachable"
	case PathTooLong:
		return "too-long"
	default:
		return fmt.Sprintf("PathStatus(%d)", int(s))
	}
}

// PathResult is the outcome of AllShortestPaths.
//
// Length is the number of edges of every path in Paths; it is meaningful
// only when Status == PathFound. Each path starts at the source and ends
// at the target.
type PathResult struct {
	Status PathStatus
	Length int
	Paths  [][]int64
}

// Found reports whether at least one usable path exists.
func (r *PathResult) Found() bool { return r.Status == PathFound }

func reverse(p []int64) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
