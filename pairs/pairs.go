// SPDX-License-Identifier: MIT
//
// File: pairs.go
// Role: candidate-edge enumeration over a frozen degree partition.
// Determinism:
//   - Intra: buckets in index order; within a bucket, pairs (a,b) with a<b
//     in ascending (a, b) order.
//   - Inter: core.Graph.Edges() order (From<To, ascending).

// Package pairs enumerates the candidate edges that are fed to the
// leave-one-out extractor, either within each degree bucket or across
// buckets.
package pairs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/signedge/core"
	"github.com/katalvlaran/signedge/degree"
)

// InterGroup is the single group key used by inter-bucket enumeration.
const InterGroup = 0

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pairs: graph is nil")

	// ErrUnpartitioned indicates a vertex that has no bucket, i.e. the
	// partition was computed on a different graph.
	ErrUnpartitioned = errors.New("pairs: vertex missing from partition")
)

// Candidate is an existing edge selected for feature extraction.
// A < B always holds. BucketLo ≤ BucketHi are the frozen buckets of the
// endpoints; for intra candidates both equal Group.
type Candidate struct {
	A, B     int64
	Sign     core.Sign
	Group    int
	BucketLo int
	BucketHi int
}

// ClassKey is the sampling class of a candidate: its canonical bucket pair
// and sign.
type ClassKey struct {
	Lo, Hi int
	Sign   core.Sign
}

// String renders the key as "lo-hi/sign".
func (k ClassKey) String() string { return fmt.Sprintf("%d-%d/%s", k.Lo, k.Hi, k.Sign) }

// Class returns the sampling class of c.
func (c Candidate) Class() ClassKey {
	return ClassKey{Lo: c.BucketLo, Hi: c.BucketHi, Sign: c.Sign}
}

// Groups maps a group key to its candidates.
type Groups map[int][]Candidate

// Keys returns the group keys in ascending order.
func (gs Groups) Keys() []int {
	keys := make([]int, 0, len(gs))
	for k := range gs {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Total returns the number of candidates across all groups.
func (gs Groups) Total() int {
	n := 0
	for _, cs := range gs {
		n += len(cs)
	}
	return n
}

// Intra returns, for every bucket index, the edges whose endpoints both
// belong to that bucket. Every bucket index is present as a key, possibly
// with an empty slice.
//
// Only the adjacency of bucket members is scanned, so the cost is bounded by
// the edges touching the bucket rather than by all node pairs.
//
// Errors: ErrGraphNil; core errors for vertices no longer in g.
// Complexity: O(V + E log d).
func Intra(g *core.Graph, b *degree.Buckets) (Groups, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	out := make(Groups, b.Len())
	for _, bucket := range b.Groups {
		cs := []Candidate{}
		for _, a := range bucket.Nodes {
			nbrs, err := g.Neighbors(a)
			if err != nil {
				return nil, fmt.Errorf("pairs: Intra(%d): %w", a, err)
			}
			for _, e := range nbrs {
				if e.To <= a {
					continue
				}
				if j, ok := b.IndexOf(e.To); !ok || j != bucket.Index {
					continue
				}
				cs = append(cs, Candidate{
					A: a, B: e.To, Sign: e.Sign,
					Group: bucket.Index, BucketLo: bucket.Index, BucketHi: bucket.Index,
				})
			}
		}
		out[bucket.Index] = cs
	}

	return out, nil
}

// Inter returns every edge whose endpoints lie in different buckets,
// as a single list under InterGroup.
//
// Errors: ErrGraphNil, ErrUnpartitioned.
// Complexity: O(E log E).
func Inter(g *core.Graph, b *degree.Buckets) (Groups, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	cs := []Candidate{}
	for _, e := range g.Edges() {
		i, ok := b.IndexOf(e.From)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnpartitioned, e.From)
		}
		j, ok := b.IndexOf(e.To)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnpartitioned, e.To)
		}
		if i == j {
			continue
		}
		if i > j {
			i, j = j, i
		}
		cs = append(cs, Candidate{
			A: e.From, B: e.To, Sign: e.Sign,
			Group: InterGroup, BucketLo: i, BucketHi: j,
		})
	}

	return Groups{InterGroup: cs}, nil
}
