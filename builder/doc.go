// SPDX-License-Identifier: MIT

// Package builder provides deterministic, functional-options style
// generators of signed graphs: fixtures for tests and synthetic inputs for
// the extraction pipeline.
//
// The package offers:
//
//   - Orchestration: BuildGraph(opts, constructors...) creates a core.Graph
//     and applies constructors in order.
//   - Topologies: Path, Cycle, Star, Complete, RandomSparse.
//   - Sign distributions (SignFn): ConstantSign, AlternatingSign, BernoulliSign.
//   - Options: WithSeed, WithRand, WithIDOffset, WithSignFn, WithNegativeRatio.
//
// Guarantees:
//
//   - Composable: constructors skip edges that already exist, so overlaying
//     topologies on shared IDs never trips core.ErrMultiEdgeNotAllowed.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource) wrapped with method context.
//   - Same options, seed and constructor order ⇒ identical graph.
package builder
