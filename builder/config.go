// SPDX-License-Identifier: MIT
// Package: signedge/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn   = offsetID(0)      (0, 1, 2, ...)
//   • rng    = nil              (pure/deterministic unless seeded)
//   • signFn = ConstantSign(+1)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/signedge/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) int64
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Sign generator for edges.
	signFn SignFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   offsetID(0),
		signFn: ConstantSign(core.Positive),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// offsetID maps index i to base+i.
func offsetID(base int64) func(int) int64 {
	return func(i int) int64 { return base + int64(i) }
}
