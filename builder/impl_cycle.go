// SPDX-License-Identifier: MIT
// Package: planarcolor/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices 0..n-1 with provisional positions per cfg placement.
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//   • Deterministic; uses no RNG.

package builder

import (
	"github.com/katalvlaran/planarcolor/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		if _, err := addPlacedVertices(g, cfg, MethodCycle, n); err != nil {
			return err
		}

		// Emit edges in ascending i; for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			u, v := i, (i+1)%n
			if err := g.AddEdge(u, v); err != nil {
				return builderErrorf(MethodCycle, ErrConstructFailed, "AddEdge(%d,%d): %v", u, v, err)
			}
			cfg.onAccept(core.Edge{U: u, V: v})
		}

		return nil
	}
}
