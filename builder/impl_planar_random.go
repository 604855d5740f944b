// SPDX-License-Identifier: MIT
// Package: planarcolor/builder
//
// impl_planar_random.go: implementation of the PlanarRandom constructor.
//
// Model:
//   - N drawn uniformly from [min,max] (inclusive).
//   - Vertices 0..N-1 get provisional positions (see Placement).
//   - Each unordered pair {i,j}, i<j, is proposed with probability p.
//   - A proposal is admitted only if its straight segment crosses no
//     committed edge that shares no endpoint with it.
//
// Contract:
//   - min ≥ 1 and max ≥ min (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil unless both N and every coin are fixed
//     (min == max and p ∈ {0,1}); else ErrNeedRandSource.
//   - Zero admitted edges is valid output, not an error.
//
// Complexity:
//   - Time: O(N²·E) crossing tests in the worst case; N ≤ 20 by default.
//   - Space: O(N + E).
//
// Determinism:
//   - RNG draws: one Intn for N (skipped when min == max), then one Float64
//     per pair in (i asc, j asc) order, drawn whether or not it is admitted.
//   - Committed edges are scanned in commit order, so the earliest admitted
//     edge always wins a contested region.

package builder

import (
	"github.com/jbeda/geom"

	"github.com/katalvlaran/planarcolor/core"
	"github.com/katalvlaran/planarcolor/geometry"
	"github.com/katalvlaran/planarcolor/layout"
)

// PlanarRandom returns a Constructor that samples a crossing-free random
// graph as described in the file header.
func PlanarRandom() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateRange(MethodPlanarRandom, cfg.minVertices, cfg.maxVertices, MinPlanarVertices); err != nil {
			return err
		}
		if err := validateProbability(MethodPlanarRandom, cfg.edgeProb); err != nil {
			return err
		}
		fixedCoins := cfg.edgeProb == MinProbability || cfg.edgeProb == MaxProbability
		if cfg.rng == nil && (cfg.minVertices != cfg.maxVertices || !fixedCoins) {
			return builderErrorf(MethodPlanarRandom, ErrNeedRandSource, "rng is required")
		}

		// 2) Choose N.
		n := cfg.minVertices
		if cfg.maxVertices > cfg.minVertices {
			n += cfg.rng.Intn(cfg.maxVertices - cfg.minVertices + 1)
		}

		// 3) Add vertices 0..n-1 with provisional positions.
		pos, err := addPlacedVertices(g, cfg, MethodPlanarRandom, n)
		if err != nil {
			return err
		}

		// 4) Propose and admit edges in (i asc, j asc) order.
		committed := g.Edges()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !flip(cfg) {
					continue
				}
				proposed := core.Edge{U: i, V: j}
				if blocking, crossed := firstCrossing(proposed, committed, pos); crossed {
					cfg.onReject(proposed, blocking)
					continue
				}
				if err = g.AddEdge(i, j); err != nil {
					return builderErrorf(MethodPlanarRandom, ErrConstructFailed, "AddEdge(%d,%d): %v", i, j, err)
				}
				committed = append(committed, proposed)
				cfg.onAccept(proposed)
			}
		}

		return nil
	}
}

// flip draws one Bernoulli(p) trial. Without an RNG the coin is fixed
// (validated upstream: p ∈ {0,1}).
func flip(cfg builderConfig) bool {
	if cfg.rng == nil {
		return cfg.edgeProb == MaxProbability
	}
	return cfg.rng.Float64() < cfg.edgeProb
}

// firstCrossing returns the first committed edge, in commit order, that
// shares no endpoint with e and whose segment intersects e's segment.
func firstCrossing(e core.Edge, committed []core.Edge, pos map[int]geom.Coord) (core.Edge, bool) {
	a, b := pos[e.U], pos[e.V]
	for _, c := range committed {
		if e.SharesEndpoint(c) {
			continue
		}
		if geometry.Intersects(a, b, pos[c.U], pos[c.V]) {
			return c, true
		}
	}
	return core.Edge{}, false
}

// addPlacedVertices adds IDs 0..n-1 and writes their provisional Pos.
// It returns the ID → position view used by crossing tests.
func addPlacedVertices(g *core.Graph, cfg builderConfig, method string, n int) (map[int]geom.Coord, error) {
	var ring []geom.Coord
	if cfg.placement == PlacementRing {
		ring = layout.Ring(n, cfg.center, cfg.radius)
	}

	pos := make(map[int]geom.Coord, n)
	for i := 0; i < n; i++ {
		v, err := g.AddVertex(i)
		if err != nil {
			return nil, builderErrorf(method, ErrConstructFailed, "AddVertex(%d): %v", i, err)
		}
		if ring != nil {
			v.Pos = ring[i]
		}
		pos[i] = v.Pos
	}
	return pos, nil
}
