// SPDX-License-Identifier: MIT

// Package sampler caps the number of extracted records per structural class
// and routes records to their output destinations.
//
// A class is a pairs.ClassKey: the canonical (low, high) bucket pair of the
// endpoints plus the edge sign. The counter is only ever incremented, by
// one per extracted record, whether or not its features are sentinels.
package sampler

import (
	"sort"

	"github.com/katalvlaran/signedge/pairs"
)

// Counter counts records per class.
type Counter struct {
	counts map[pairs.ClassKey]int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[pairs.ClassKey]int)}
}

// Count returns the number of records seen for k.
func (c *Counter) Count(k pairs.ClassKey) int { return c.counts[k] }

// Inc increments k and returns the new count.
func (c *Counter) Inc(k pairs.ClassKey) int {
	c.counts[k]++
	return c.counts[k]
}

// Classes returns every class with a non-zero count, ordered by
// (Lo, Hi, Sign).
func (c *Counter) Classes() []pairs.ClassKey {
	out := make([]pairs.ClassKey, 0, len(c.counts))
	for k := range c.counts {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Lo != b.Lo {
			return a.Lo < b.Lo
		}
		if a.Hi != b.Hi {
			return a.Hi < b.Hi
		}
		return a.Sign > b.Sign
	})
	return out
}

// Sampler admits candidates while their class is below the limit.
// It is single-writer: the pipeline calls Admit and Record between
// candidates, never concurrently.
type Sampler struct {
	limit   int
	counter *Counter
	skipped int
}

// New returns a Sampler admitting at most limit records per class.
// limit ≤ 0 disables the cap.
func New(limit int) *Sampler {
	return &Sampler{limit: limit, counter: NewCounter()}
}

// Limit returns the per-class cap (≤ 0 means unlimited).
func (s *Sampler) Limit() int { return s.limit }

// Admit reports whether a candidate of class k should be extracted.
// A rejected candidate leaves the counter untouched.
func (s *Sampler) Admit(k pairs.ClassKey) bool {
	if s.limit > 0 && s.counter.Count(k) >= s.limit {
		s.skipped++
		return false
	}
	return true
}

// Record counts one extracted record of class k.
func (s *Sampler) Record(k pairs.ClassKey) { s.counter.Inc(k) }

// Counter exposes the per-class counts.
func (s *Sampler) Counter() *Counter { return s.counter }

// Skipped returns how many candidates Admit rejected.
func (s *Sampler) Skipped() int { return s.skipped }
