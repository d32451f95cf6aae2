// SPDX-License-Identifier: MIT
// Package: signedge/builder
//
// impl_path.go - Path(n): vertices idFn(0..n-1), edges (i-1) → i for i=1..n-1.
//   - Deterministic edge emission order by increasing i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/signedge/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 1; i < n; i++ {
			if err := addSigned(g, cfg, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
