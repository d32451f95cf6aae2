// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Extractor configuration, feature vector and record types.

package features

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/signedge/bfs"
	"github.com/katalvlaran/signedge/pairs"
)

const (
	// DefaultMaxPathLength is the longest shortest path (in edges) still
	// considered usable.
	DefaultMaxPathLength = 4

	// DefaultSentinel replaces features that cannot be computed.
	DefaultSentinel = 1000.0

	// NumFeatures is the length of a feature vector.
	NumFeatures = 5

	// FeatureMin and FeatureMax bound every computable feature. prop2 is the
	// only one above 1: a two-edge path between degree-1 endpoints gives
	// (1 + 1/2 + 1) / 2 = 1.25.
	FeatureMin = -1.0
	FeatureMax = 1.5
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("features: graph is nil")

	// ErrBrokenInvariant indicates adjacency data that contradicts itself,
	// e.g. a common neighbor without an edge to one endpoint or a candidate
	// whose sign differs from the stored one. It is never recoverable.
	ErrBrokenInvariant = errors.New("features: broken graph invariant")

	// ErrOptionViolation indicates an invalid Extractor option.
	ErrOptionViolation = errors.New("features: invalid option")
)

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxPathLength sets the largest usable shortest-path length.
// 0 disables the limit; negative values are rejected by New.
func WithMaxPathLength(n int) Option {
	return func(x *Extractor) {
		if n < 0 {
			x.err = fmt.Errorf("%w: max path length %d < 0", ErrOptionViolation, n)
			return
		}
		x.maxPath = n
	}
}

// WithSentinel sets the placeholder for uncomputable features.
// It must lie outside [FeatureMin, FeatureMax] so it cannot be confused
// with a real value.
func WithSentinel(v float64) Option {
	return func(x *Extractor) {
		if !ValidSentinel(v) {
			x.err = fmt.Errorf("%w: sentinel %g inside [%g, %g]", ErrOptionViolation, v, FeatureMin, FeatureMax)
			return
		}
		x.sentinel = v
	}
}

// ValidSentinel reports whether v lies outside the range of real features.
func ValidSentinel(v float64) bool { return v < FeatureMin || v > FeatureMax }

// WithPathLimit caps how many shortest paths are averaged; 0 means all.
func WithPathLimit(n int) Option {
	return func(x *Extractor) {
		if n < 0 {
			x.err = fmt.Errorf("%w: path limit %d < 0", ErrOptionViolation, n)
			return
		}
		x.pathLimit = n
	}
}

// Features holds the five leave-one-out features of one candidate edge:
//
//	[0] signed path ratio     mean over shortest paths of Σsign / edges
//	[1] random-walk ratio     mean over shortest paths of Σ 1/deg(v) / edges
//	[2] neighborhood overlap  |N(a)∩N(b)| / |N(a)∪N(b)|
//	[3] balanced triangles    balanced / |N(a)∩N(b)|
//	[4] sign agreement        (agree+ − agree−) / |N(a)∪N(b)|
type Features [NumFeatures]float64

// Prop1 returns the signed path ratio.
func (f Features) Prop1() float64 { return f[0] }

// Prop2 returns the random-walk ratio.
func (f Features) Prop2() float64 { return f[1] }

// Prop3 returns the neighborhood overlap.
func (f Features) Prop3() float64 { return f[2] }

// Prop4 returns the balanced-triangle ratio.
func (f Features) Prop4() float64 { return f[3] }

// Prop5 returns the sign agreement.
func (f Features) Prop5() float64 { return f[4] }

// Record is the extraction result of one candidate.
type Record struct {
	Candidate pairs.Candidate
	Features  Features
	Class     pairs.ClassKey
	Path      bfs.PathStatus
}
