// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/signedge/core"
	"github.com/katalvlaran/signedge/features"
)

// Destination identifies one output stream. For intra-bucket routing Lo and
// Hi both equal Group; for inter-bucket routing they hold the canonical
// bucket pair and Group is pairs.InterGroup.
type Destination struct {
	Group  int
	Lo, Hi int
	Sign   core.Sign
}

// String renders d as "group/lo-hi/sign".
func (d Destination) String() string {
	return fmt.Sprintf("%d/%d-%d/%s", d.Group, d.Lo, d.Hi, d.Sign)
}

// CompareDestinations orders by group, bucket pair, then positive before negative.
func CompareDestinations(a, b Destination) int {
	switch {
	case a.Group != b.Group:
		return cmpInt(a.Group, b.Group)
	case a.Lo != b.Lo:
		return cmpInt(a.Lo, b.Lo)
	case a.Hi != b.Hi:
		return cmpInt(a.Hi, b.Hi)
	default:
		return cmpInt(int(b.Sign), int(a.Sign))
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Router groups records by destination and iterates destinations in
// CompareDestinations order.
type Router struct {
	tree redblacktree.Tree
	n    int
}

// NewRouter returns an empty Router.
func NewRouter() *Router {
	return &Router{
		tree: redblacktree.Tree{
			Comparator: func(A, B interface{}) int {
				return CompareDestinations(A.(Destination), B.(Destination))
			},
		},
	}
}

// DestinationOf returns where rec is routed: by its group and sign, and by
// its bucket pair as well.
func DestinationOf(rec features.Record) Destination {
	c := rec.Candidate
	return Destination{Group: c.Group, Lo: c.BucketLo, Hi: c.BucketHi, Sign: c.Sign}
}

// IntraDestinations lists the destinations of n intra-bucket groups,
// positive before negative.
func IntraDestinations(n int) []Destination {
	out := make([]Destination, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out,
			Destination{Group: i, Lo: i, Hi: i, Sign: core.Positive},
			Destination{Group: i, Lo: i, Hi: i, Sign: core.Negative},
		)
	}
	return out
}

// Touch registers d so that it is visited by Each even without records.
func (r *Router) Touch(d Destination) {
	if _, found := r.tree.Get(d); !found {
		r.tree.Put(d, []features.Record{})
	}
}

// Add appends rec to its destination.
func (r *Router) Add(rec features.Record) {
	d := DestinationOf(rec)
	var recs []features.Record
	if v, found := r.tree.Get(d); found {
		recs = v.([]features.Record)
	}
	r.tree.Put(d, append(recs, rec))
	r.n++
}

// Records returns the records routed to d, in insertion order.
func (r *Router) Records(d Destination) []features.Record {
	if v, found := r.tree.Get(d); found {
		return v.([]features.Record)
	}
	return nil
}

// Destinations returns every registered destination in order.
func (r *Router) Destinations() []Destination {
	out := make([]Destination, 0, r.tree.Size())
	for _, k := range r.tree.Keys() {
		out = append(out, k.(Destination))
	}
	return out
}

// Len returns the total number of routed records.
func (r *Router) Len() int { return r.n }

// Each calls fn for every destination in order and stops at the first error.
func (r *Router) Each(fn func(Destination, []features.Record) error) error {
	itr := r.tree.Iterator()
	for itr.Next() {
		if err := fn(itr.Key().(Destination), itr.Value().([]features.Record)); err != nil {
			return err
		}
	}
	return nil
}
