// SPDX-License-Identifier: MIT
// Package: planarcolor/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng         = nil                 (stochastic constructors require WithSeed/WithRand)
//   • vertices    = [10,20] inclusive
//   • edgeProb    = 0.5                 (fair coin per unordered pair)
//   • placement   = PlacementRing
//   • center      = (320,320), radius = 300

package builder

import (
	"math/rand"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/planarcolor/core"
)

// Placement selects the provisional vertex positions used by the crossing
// test while edges are being admitted.
type Placement int

const (
	// PlacementRing puts N vertices evenly on the canvas circle before any
	// edge is proposed, so crossing tests see real geometry.
	PlacementRing Placement = iota

	// PlacementOrigin leaves every vertex at (0,0). Every crossing test then
	// degenerates to "parallel" and every proposed edge is admitted.
	PlacementOrigin
)

// String returns the flag spelling of p.
func (p Placement) String() string {
	switch p {
	case PlacementRing:
		return "ring"
	case PlacementOrigin:
		return "origin"
	default:
		return "unknown"
	}
}

// ParsePlacement maps "ring"/"origin" to a Placement.
func ParsePlacement(s string) (Placement, bool) {
	switch s {
	case "ring":
		return PlacementRing, true
	case "origin":
		return PlacementOrigin, true
	}
	return PlacementRing, false
}

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Inclusive vertex-count range for PlanarRandom.
	minVertices int
	maxVertices int

	// Probability that an unordered pair is proposed.
	edgeProb float64

	// Provisional positions for crossing tests.
	placement Placement
	center    geom.Coord
	radius    float64

	// Admission hooks; never nil after newBuilderConfig.
	onAccept func(e core.Edge)
	onReject func(proposed, blocking core.Edge)
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil,
		minVertices: DefaultMinVertices,
		maxVertices: DefaultMaxVertices,
		edgeProb:    DefaultEdgeProbability,
		placement:   PlacementRing,
		center:      geom.Coord{X: DefaultCanvasSize / 2, Y: DefaultCanvasSize / 2},
		radius:      DefaultCanvasSize/2 - DefaultVertexMargin,
		onAccept:    func(core.Edge) {},
		onReject:    func(core.Edge, core.Edge) {},
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
