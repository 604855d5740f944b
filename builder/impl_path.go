// SPDX-License-Identifier: MIT
// Package: planarcolor/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices 0..n-1 with provisional positions per cfg placement.
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(n) for the position view.

package builder

import (
	"github.com/katalvlaran/planarcolor/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		if _, err := addPlacedVertices(g, cfg, MethodPath, n); err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err := g.AddEdge(i-1, i); err != nil {
				return builderErrorf(MethodPath, ErrConstructFailed, "AddEdge(%d,%d): %v", i-1, i, err)
			}
			cfg.onAccept(core.Edge{U: i - 1, V: i})
		}

		return nil
	}
}
