// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, predecessor links and visit order,
// plus an all-shortest-paths query with an explicit outcome.
//
// What
//
//   - BFS explores vertices in non-decreasing distance (edge count) from a start vertex.
//     The BFSResult contains:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its first predecessor
//   - Preds: map from vertex → every predecessor lying on a shortest path
//   - Truncated: whether MaxDepth cut off any undiscovered vertex
//   - AllShortestPaths(g, from, to) enumerates every shortest from→to path and
//     classifies the outcome as PathFound, PathUnreachable or PathTooLong.
//
// Why
//
//	Leave-one-out feature extraction needs all tied shortest paths between
//	the endpoints of a temporarily removed edge, bounded by a maximum length.
//	Reporting "no path" and "too long" as a status instead of an error keeps
//	the caller's remove/restore sequence free of error-driven control flow.
//
// Determinism
//
//	core.NeighborIDs returns neighbors sorted ascending and BFS expands them in
//	that order, so Order, Preds and the order of enumerated paths are
//	reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - BFS time:   O(V + E · log d) (neighbor lists are sorted per expansion)
//   - Memory:     O(V + E) for Depth/Preds
//   - Enumeration is proportional to the number of shortest paths; use
//     WithPathLimit to cap it on hub-heavy graphs.
//
// Usage
//
//	res, err := bfs.AllShortestPaths(g, a, b, bfs.WithMaxDepth(4))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrTargetVertexNotFound, ...
//	}
//	switch res.Status {
//	case bfs.PathFound:       // res.Paths, res.Length
//	case bfs.PathUnreachable: // different component
//	case bfs.PathTooLong:     // beyond MaxDepth
//	}
//
// Options
//
//   - WithContext(ctx):   cancellation.
//   - WithMaxDepth(d):    do not discover vertices beyond depth d (>0).
//   - WithPathLimit(n):   materialize at most n shortest paths (>0).
//   - WithOnVisit(fn):    hook during visit; returning error aborts BFS.
//   - WithTarget(id):     stop once the target's layer is settled.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrTargetVertexNotFound.
//   - ErrOptionViolation for negative MaxDepth/PathLimit.
//   - ErrNeighbors if core.NeighborIDs fails.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
