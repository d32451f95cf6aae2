// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, predecessor links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with an optional visit hook, depth limiting, and early termination at a target.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/signedge/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    int64
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[int64]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any user-supplied hook error.
func BFS(g *core.Graph, startID int64, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[int64]bool),
		res: &BFSResult{
			Depth:  make(map[int64]int),
			Parent: make(map[int64]int64),
			Preds:  make(map[int64][]int64),
		},
	}

	// Seed queue with start vertex (no parent)
	w.discover(startID, 0)
	return w.res, w.loop()
}

// AllShortestPaths returns every shortest path between from and to.
//
// The search stops as soon as the target layer is settled, so the cost is
// bounded by the ball of radius dist(from,to) (or MaxDepth) around from.
// An unreachable or too-distant target is reported through
// PathResult.Status, never as an error.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrTargetVertexNotFound,
// ErrOptionViolation, ErrNeighbors, context errors.
func AllShortestPaths(g *core.Graph, from, to int64, opts ...Option) (*PathResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(to) {
		return nil, ErrTargetVertexNotFound
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	res, err := BFS(g, from, append(opts, WithTarget(to))...)
	if err != nil {
		return nil, err
	}

	length, ok := res.Depth[to]
	if !ok {
		if res.Truncated {
			return &PathResult{Status: PathTooLong}, nil
		}
		return &PathResult{Status: PathUnreachable}, nil
	}

	return &PathResult{
		Status: PathFound,
		Length: length,
		Paths:  collectPaths(res.Preds, to, length, o.PathLimit),
	}, nil
}

func buildOptions(opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// discover marks id visited at depth d and adds it to the queue.
func (w *walker) discover(id int64, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, target layer reached, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		// every predecessor of the target sits one layer above it and has
		// already been expanded once the first vertex of that layer is dequeued
		if w.opts.hasTarget {
			if td, ok := w.res.Depth[w.opts.target]; ok && item.depth >= td {
				return nil
			}
		}

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}
	return nil
}

// expand retrieves neighbors, applies MaxDepth, discovers unseen neighbors
// and records every shortest-path predecessor.
func (w *walker) expand(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
				w.res.Truncated = true
				continue
			}
			w.discover(nbr, nextDepth)
			w.res.Parent[nbr] = item.id
			w.res.Preds[nbr] = append(w.res.Preds[nbr], item.id)
			continue
		}
		// already discovered: another shortest route iff it sits on the next layer
		if w.res.Depth[nbr] == nextDepth {
			w.res.Preds[nbr] = append(w.res.Preds[nbr], item.id)
		}
	}
	return nil
}

// collectPaths walks Preds backwards from to, emitting paths start→to.
// limit > 0 stops after that many paths.
func collectPaths(preds map[int64][]int64, to int64, length, limit int) [][]int64 {
	var out [][]int64
	buf := make([]int64, length+1)

	var walk func(v int64, pos int) bool
	walk = func(v int64, pos int) bool {
		buf[pos] = v
		if pos == 0 {
			p := make([]int64, len(buf))
			copy(p, buf)
			out = append(out, p)
			return limit == 0 || len(out) < limit
		}
		for _, u := range preds[v] {
			if !walk(u, pos-1) {
				return false
			}
		}
		return true
	}
	walk(to, length)

	return out
}
