// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary facade over a Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// GraphStats is a snapshot of catalog sizes and coloring progress.
type GraphStats struct {
	VertexCount   int // |V|
	EdgeCount     int // |E|
	MaxDegree     int // largest neighbor count (0 on an empty graph)
	IsolatedCount int // vertices with no neighbors
	ColoredCount  int // vertices whose Color is Valid
}

// Stats produces a deterministic, read-only snapshot of counts.
//
// Implementation:
//   - Stage 1: Record |V| and |E|.
//   - Stage 2: Scan vertices once for degree extremes and colored vertices.
//
// Returns:
//   - *GraphStats: immutable-by-convention summary.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
//
// Notes:
//   - Useful for diagnostics after each pipeline stage (build, color).
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for _, v := range g.vertices {
		d := len(v.neighbors)
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		if d == 0 {
			stats.IsolatedCount++
		}
		if v.Color.Valid() {
			stats.ColoredCount++
		}
	}

	return &stats
}
