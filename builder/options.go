// SPDX-License-Identifier: MIT
// Package: planarcolor/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//     The package never seeds from the wall clock.

package builder

import (
	"math/rand"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/planarcolor/core"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

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

// WithVertexRange sets the inclusive range the vertex count is drawn from.
// Range checks are deferred to the constructor (ErrTooFewVertices).
func WithVertexRange(min, max int) BuilderOption {
	return func(c *builderConfig) {
		c.minVertices, c.maxVertices = min, max
	}
}

// WithVertexCount fixes the vertex count (min == max == n).
// No RNG draw is spent on the count when the range is a single value.
func WithVertexCount(n int) BuilderOption {
	return WithVertexRange(n, n)
}

// WithEdgeProbability sets the per-pair proposal probability.
// Range checks are deferred to the constructor (ErrInvalidProbability).
func WithEdgeProbability(p float64) BuilderOption {
	return func(c *builderConfig) {
		c.edgeProb = p
	}
}

// WithPlacement selects the provisional positions used by crossing tests.
// Panics on an unknown Placement.
func WithPlacement(p Placement) BuilderOption {
	if p != PlacementRing && p != PlacementOrigin {
		panic("builder: WithPlacement(unknown)")
	}
	return func(c *builderConfig) {
		c.placement = p
	}
}

// WithCanvas sets the circle used by PlacementRing. Panics if radius <= 0.
func WithCanvas(center geom.Coord, radius float64) BuilderOption {
	if radius <= 0 {
		panic("builder: WithCanvas(radius<=0)")
	}
	return func(c *builderConfig) {
		c.center, c.radius = center, radius
	}
}

// WithOnAccept registers a hook called after each committed edge.
// Panics on nil.
func WithOnAccept(fn func(e core.Edge)) BuilderOption {
	if fn == nil {
		panic("builder: WithOnAccept(nil)")
	}
	return func(c *builderConfig) {
		c.onAccept = fn
	}
}

// WithOnReject registers a hook called for each proposal that would cross
// an already committed edge. blocking is the first such edge found.
// Panics on nil.
func WithOnReject(fn func(proposed, blocking core.Edge)) BuilderOption {
	if fn == nil {
		panic("builder: WithOnReject(nil)")
	}
	return func(c *builderConfig) {
		c.onReject = fn
	}
}
