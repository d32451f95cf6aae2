// SPDX-License-Identifier: MIT

package degree

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/signedge/core"
)

// Buckets is a frozen partition of a graph's vertices by degree range.
//
// Membership reflects degrees at the time Partition ran; later edge removals
// do not move vertices between buckets.
type Buckets struct {
	Ranges Ranges
	Groups []Bucket

	index map[int64]int // vertex → bucket index
}

// Partition assigns every vertex of g to the range containing its degree.
//
// Every range yields a Bucket, even an empty one, in range order. Nodes
// inside a bucket are sorted ascending.
//
// Errors: ErrGraphNil, ErrBadRanges, ErrDegreeNotCovered.
// Complexity: O(V log V + V log k).
func Partition(g *core.Graph, rs Ranges) (*Buckets, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}

	b := &Buckets{
		Ranges: rs,
		Groups: make([]Bucket, len(rs)),
		index:  make(map[int64]int, g.VertexCount()),
	}
	for i, r := range rs {
		b.Groups[i] = Bucket{Index: i, Range: r, Nodes: []int64{}}
	}
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		if err != nil {
			return nil, fmt.Errorf("degree: vertex %d: %w", v, err)
		}
		i, err := rs.Index(d)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", v, err)
		}
		b.Groups[i].Nodes = append(b.Groups[i].Nodes, v)
		b.index[v] = i
	}

	return b, nil
}

// IndexOf returns the frozen bucket index of v.
func (b *Buckets) IndexOf(v int64) (int, bool) {
	i, ok := b.index[v]
	return i, ok
}

// Len returns the number of buckets (equal to the number of ranges).
func (b *Buckets) Len() int { return len(b.Groups) }

// Size returns the number of partitioned vertices.
func (b *Buckets) Size() int { return len(b.index) }

// Adaptive derives ranges from the degree distribution of g: distinct
// degrees are walked in ascending order and a range is closed as soon as
// it holds more than minBucket vertices. The trailing range ends at
// VertexCount-1, the largest degree a simple graph can have, so the result
// also covers degrees that grow later.
//
// Errors: ErrGraphNil, ErrEmptyGraph, ErrBadRanges (negative minBucket).
// Complexity: O(V log V).
func Adaptive(g *core.Graph, minBucket int) (Ranges, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if minBucket < 0 {
		return nil, fmt.Errorf("%w: minBucket %d < 0", ErrBadRanges, minBucket)
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	perDegree := make(map[int]int)
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		if err != nil {
			return nil, err
		}
		perDegree[d]++
	}
	degrees := make([]int, 0, len(perDegree))
	for d := range perDegree {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)

	var (
		rs    Ranges
		lo    int
		count int
	)
	for _, d := range degrees {
		count += perDegree[d]
		if count > minBucket {
			rs = append(rs, Range{Lo: lo, Hi: d})
			lo = d + 1
			count = 0
		}
	}
	if count > 0 {
		rs = append(rs, Range{Lo: lo, Hi: n - 1})
	}

	return rs, rs.Validate()
}
