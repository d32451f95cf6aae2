// SPDX-License-Identifier: MIT
// Package: signedge/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDOffset numbers vertices base, base+1, ... instead of 0, 1, ...
// Useful when composing disjoint fixtures in one graph.
func WithIDOffset(base int64) BuilderOption {
	return func(c *builderConfig) {
		c.idFn = offsetID(base)
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSignFn sets the edge sign generator. Panics on nil.
func WithSignFn(fn SignFn) BuilderOption {
	if fn == nil {
		panic("builder: WithSignFn(nil)")
	}
	return func(c *builderConfig) {
		c.signFn = fn
	}
}

// WithNegativeRatio draws each sign negative with probability p.
// Panics if p is outside [0,1].
func WithNegativeRatio(p float64) BuilderOption {
	if p < probMin || p > probMax {
		panic(fmt.Sprintf("builder: WithNegativeRatio(%g) not in [0,1]", p))
	}
	return WithSignFn(BernoulliSign(p))
}
