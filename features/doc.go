// SPDX-License-Identifier: MIT

// Package features computes leave-one-out topological features of signed
// edges.
//
// For a candidate edge (a, b, s) the Extractor removes the edge, measures
// the graph that remains and puts the edge back with its original sign:
//
//   - Path features: over every shortest a→b path of k edges, the mean of
//     Σsign/k and of Σ 1/deg(v)/k. No path, or a path longer than the
//     configured maximum, yields the sentinel for both.
//   - Neighborhood features: Jaccard overlap of N(a) and N(b), the share of
//     structurally balanced triangles over common neighbors, and the
//     positive-minus-negative sign agreement over the union. Empty sets
//     yield the sentinel.
//
// All degrees and neighbor sets are those of the graph with the candidate
// removed. Restoration is deferred, so it also runs when computation fails.
//
// A common neighbor without an edge to an endpoint is reported as
// ErrBrokenInvariant: the surrounding run must stop.
package features
