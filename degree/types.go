// SPDX-License-Identifier: MIT

// Package degree maps vertex degrees to configured degree-range buckets and
// partitions a graph's vertices accordingly.
package degree

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for degree ranges and partitioning.
var (
	// ErrBadRanges indicates ranges that are empty, unsorted, overlapping,
	// gapped, or do not start at degree 0.
	ErrBadRanges = errors.New("degree: invalid degree ranges")

	// ErrDegreeNotCovered indicates a degree outside every configured range.
	ErrDegreeNotCovered = errors.New("degree: degree not covered by any range")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("degree: graph is nil")

	// ErrEmptyGraph is returned when ranges cannot be derived from a graph without vertices.
	ErrEmptyGraph = errors.New("degree: graph has no vertices")
)

// Range is an inclusive degree interval [Lo, Hi].
type Range struct {
	Lo int
	Hi int
}

// Contains reports whether Lo ≤ d ≤ Hi.
func (r Range) Contains(d int) bool { return r.Lo <= d && d <= r.Hi }

// String renders the range as "lo-hi"; it doubles as a file-name fragment.
func (r Range) String() string { return fmt.Sprintf("%d-%d", r.Lo, r.Hi) }

// Ranges is an ordered, gap-free cover of [0, Hi of the last range].
type Ranges []Range

// FromPairs converts [[lo,hi], ...] (the configuration form) into validated Ranges.
func FromPairs(pairs [][2]int) (Ranges, error) {
	rs := make(Ranges, len(pairs))
	for i, p := range pairs {
		rs[i] = Range{Lo: p[0], Hi: p[1]}
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}

	return rs, nil
}

// Validate checks the ordering invariants:
//   - at least one range, the first starting at 0
//   - Lo ≤ Hi for every range
//   - each range starts right after the previous one ends
func (rs Ranges) Validate() error {
	if len(rs) == 0 {
		return fmt.Errorf("%w: no ranges", ErrBadRanges)
	}
	if rs[0].Lo != 0 {
		return fmt.Errorf("%w: first range starts at %d, want 0", ErrBadRanges, rs[0].Lo)
	}
	for i, r := range rs {
		if r.Lo > r.Hi {
			return fmt.Errorf("%w: range %d has lo %d > hi %d", ErrBadRanges, i, r.Lo, r.Hi)
		}
		if i > 0 && r.Lo != rs[i-1].Hi+1 {
			return fmt.Errorf("%w: range %d starts at %d, want %d", ErrBadRanges, i, r.Lo, rs[i-1].Hi+1)
		}
	}

	return nil
}

// MaxDegree returns the largest degree covered, or -1 for no ranges.
func (rs Ranges) MaxDegree() int {
	if len(rs) == 0 {
		return -1
	}
	return rs[len(rs)-1].Hi
}

// Index returns i such that rs[i].Lo ≤ deg ≤ rs[i].Hi.
// rs must be valid; the lookup is a binary search over the upper bounds.
//
// Errors: ErrDegreeNotCovered.
// Complexity: O(log k) for k ranges.
func (rs Ranges) Index(deg int) (int, error) {
	i := sort.Search(len(rs), func(i int) bool { return rs[i].Hi >= deg })
	if i == len(rs) || deg < rs[i].Lo {
		return -1, fmt.Errorf("%w: degree %d (max %d)", ErrDegreeNotCovered, deg, rs.MaxDegree())
	}

	return i, nil
}

// MustIndex is Index for callers that already proved coverage; it panics
// on an uncovered degree.
func (rs Ranges) MustIndex(deg int) int {
	i, err := rs.Index(deg)
	if err != nil {
		panic(err)
	}
	return i
}

// Bucket is one degree range and the vertices whose degree fell into it
// when the partition was computed.
type Bucket struct {
	Index int
	Range Range
	Nodes []int64
}
