// SPDX-License-Identifier: MIT
// Package: signedge/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/signedge/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Draw every sign from cfg.signFn so sign policy is caller-controlled.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error
// is wrapped with "BuildGraph: %w" and returned immediately.
//
// Composing constructors is allowed; later constructors skip edges that
// already exist, so e.g. Cycle + Complete over the same IDs is valid.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Topology factories (implemented in impl_*.go):
//
//	Path(n)           P_n, n ≥ 2
//	Cycle(n)          C_n, n ≥ 3
//	Star(n)           center + n-1 leaves, n ≥ 2
//	Complete(n)       K_n, n ≥ 1
//	RandomSparse(n,p) Erdős–Rényi G(n,p), n ≥ 1, p ∈ [0,1]

// addSigned inserts {u,v} with a sign drawn from cfg, skipping existing edges.
func addSigned(g *core.Graph, cfg builderConfig, method string, u, v int64) error {
	if g.HasEdge(u, v) {
		return nil
	}
	s := cfg.signFn(cfg.rng)
	if err := g.AddEdge(u, v, s); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, %v): %w", method, u, v, s, err)
	}

	return nil
}
