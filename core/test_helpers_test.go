// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for planarcolor/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and invariant checks for core.Graph.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarcolor/core"
)

// Common vertex IDs used across core tests.
const (
	V0 = 0
	V1 = 1
	V2 = 2
	V3 = 3
)

// newPathGraph RETURNS the path 0–1–…–(n-1).
func newPathGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, err := g.AddVertex(i)
		require.NoError(t, err, "AddVertex(%d)", i)
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1), "AddEdge(%d,%d)", i, i+1)
	}
	return g
}

// requireSymmetric FAILS the test unless adjacency is symmetric and loop-free.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	adj := g.AdjacencyList()
	for u, nbrs := range adj {
		for _, v := range nbrs {
			require.NotEqual(t, u, v, "self-loop on %d", u)
			require.Contains(t, adj[v], u, "edge %d-%d not mirrored", u, v)
		}
	}
}
