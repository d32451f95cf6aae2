// SPDX-License-Identifier: MIT
//
// File: extractor.go
// Role: leave-one-out extraction: lease the edge, compute, restore.
// Determinism:
//   - Paths come from bfs.AllShortestPaths (sorted adjacency), neighbor
//     sets from sorted core.Graph.NeighborIDs; results are reproducible.

package features

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/signedge/bfs"
	"github.com/katalvlaran/signedge/core"
	"github.com/katalvlaran/signedge/pairs"
)

// Extractor computes features on a graph it temporarily mutates.
// One Extractor must not run concurrently with any other user of the graph.
type Extractor struct {
	g         *core.Graph
	maxPath   int
	pathLimit int
	sentinel  float64
	err       error
}

// New returns an Extractor over g.
//
// Errors: ErrGraphNil, ErrOptionViolation.
func New(g *core.Graph, opts ...Option) (*Extractor, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	x := &Extractor{g: g, maxPath: DefaultMaxPathLength, sentinel: DefaultSentinel}
	for _, opt := range opts {
		opt(x)
	}
	if x.err != nil {
		return nil, x.err
	}

	return x, nil
}

// Sentinel returns the configured placeholder value.
func (x *Extractor) Sentinel() float64 { return x.sentinel }

// Lease removes the edge {a,b} and returns its sign plus a release func that
// re-inserts it with that sign. release is idempotent.
//
// Errors: core.ErrEdgeNotFound and other core errors.
func (x *Extractor) Lease(a, b int64) (core.Sign, func() error, error) {
	s, err := x.g.RemoveEdge(a, b)
	if err != nil {
		return 0, nil, fmt.Errorf("features: lease %d-%d: %w", a, b, err)
	}
	released := false
	release := func() error {
		if released {
			return nil
		}
		released = true
		if err := x.g.AddEdge(a, b, s); err != nil {
			return fmt.Errorf("features: restore %d-%d: %w", a, b, err)
		}
		return nil
	}

	return s, release, nil
}

// Extract removes the candidate edge, computes its features on the
// remaining graph and restores the edge before returning, on every path.
//
// An unusable shortest path yields sentinel values for the two path
// features, never an error.
//
// Errors: ErrBrokenInvariant (also wrapping core.ErrEdgeNotFound for a
// non-edge candidate), other core errors from the lease, context errors.
func (x *Extractor) Extract(ctx context.Context, c pairs.Candidate) (rec Record, err error) {
	s, release, err := x.Lease(c.A, c.B)
	if err != nil {
		if errors.Is(err, core.ErrEdgeNotFound) {
			return Record{}, fmt.Errorf("%w: candidate is not an edge: %w", ErrBrokenInvariant, err)
		}
		return Record{}, err
	}
	defer func() {
		if rerr := release(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	if s != c.Sign {
		return Record{}, fmt.Errorf("%w: candidate %d-%d has sign %s, graph has %s",
			ErrBrokenInvariant, c.A, c.B, c.Sign, s)
	}

	rec = Record{Candidate: c, Class: c.Class()}
	rec.Path, rec.Features[0], rec.Features[1], err = x.pathFeatures(ctx, c.A, c.B)
	if err != nil {
		return Record{}, err
	}
	rec.Features[2], rec.Features[3], rec.Features[4], err = x.triangleFeatures(c.A, c.B, c.Sign)
	if err != nil {
		return Record{}, err
	}

	return rec, nil
}

// pathFeatures averages the signed and random-walk ratios over all
// shortest a→b paths, both divided by the path's edge count.
// Degrees are the current ones, i.e. with the candidate edge removed.
func (x *Extractor) pathFeatures(ctx context.Context, a, b int64) (bfs.PathStatus, float64, float64, error) {
	res, err := bfs.AllShortestPaths(x.g, a, b,
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(x.maxPath),
		bfs.WithPathLimit(x.pathLimit),
	)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("features: paths %d-%d: %w", a, b, err)
	}
	if !res.Found() || len(res.Paths) == 0 {
		return res.Status, x.sentinel, x.sentinel, nil
	}

	deg := make(map[int64]int)
	var sum1, sum2 float64
	for _, p := range res.Paths {
		k := float64(len(p) - 1)
		var signs, walk float64
		for i, v := range p {
			d, ok := deg[v]
			if !ok {
				if d, err = x.g.Degree(v); err != nil {
					return 0, 0, 0, fmt.Errorf("features: degree of %d: %w", v, err)
				}
				deg[v] = d
			}
			walk += 1 / float64(d)
			if i == 0 {
				continue
			}
			s, ok := x.g.EdgeSign(p[i-1], v)
			if !ok {
				return 0, 0, 0, fmt.Errorf("%w: path edge %d-%d missing", ErrBrokenInvariant, p[i-1], v)
			}
			signs += float64(s.Int())
		}
		sum1 += signs / k
		sum2 += walk / k
	}
	n := float64(len(res.Paths))

	return bfs.PathFound, sum1 / n, sum2 / n, nil
}

// triangleFeatures computes overlap, balanced-triangle ratio and sign
// agreement from the current neighbor sets of a and b. A triangle
// (s, s_ax, s_bx) is balanced iff its sign sum is 3 or -1.
func (x *Extractor) triangleFeatures(a, b int64, s core.Sign) (float64, float64, float64, error) {
	na, err := x.g.NeighborIDs(a)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("features: neighbors of %d: %w", a, err)
	}
	nb, err := x.g.NeighborIDs(b)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("features: neighbors of %d: %w", b, err)
	}

	common := intersect(na, nb)
	union := len(na) + len(nb) - len(common)

	balanced, agreePos, agreeNeg := 0, 0, 0
	for _, v := range common {
		sa, okA := x.g.EdgeSign(a, v)
		sb, okB := x.g.EdgeSign(b, v)
		if !okA || !okB {
			return 0, 0, 0, fmt.Errorf("%w: common neighbor %d of %d-%d lacks an edge",
				ErrBrokenInvariant, v, a, b)
		}
		if sum := s.Int() + sa.Int() + sb.Int(); sum == 3 || sum == -1 {
			balanced++
		}
		if sa == sb {
			if sa == core.Positive {
				agreePos++
			} else {
				agreeNeg++
			}
		}
	}

	p3, p4, p5 := x.sentinel, x.sentinel, x.sentinel
	if union > 0 {
		p3 = float64(len(common)) / float64(union)
		p5 = float64(agreePos-agreeNeg) / float64(union)
	}
	if len(common) > 0 {
		p4 = float64(balanced) / float64(len(common))
	}

	return p3, p4, p5, nil
}

// intersect merges two ascending ID lists.
func intersect(xs, ys []int64) []int64 {
	var out []int64
	i, j := 0, 0
	for i < len(xs) && j < len(ys) {
		switch {
		case xs[i] < ys[j]:
			i++
		case xs[i] > ys[j]:
			j++
		default:
			out = append(out, xs[i])
			i++
			j++
		}
	}
	return out
}
