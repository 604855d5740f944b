// SPDX-License-Identifier: MIT
// Package: planarcolor/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - BuildPlanar is the convenience wrapper for the random crossing-free graph plus admission stats.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarcolor/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error
// is wrapped with the context "BuildGraph: %w" and returned immediately;
// no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return g, nil
}

// Stats counts edge admission decisions of one build.
type Stats struct {
	Proposed int // pairs whose coin came up
	Accepted int // proposals committed to the graph
	Rejected int // proposals that would have crossed a committed edge
}

// BuildPlanar builds one PlanarRandom graph and reports admission counts.
// Caller-supplied WithOnAccept/WithOnReject hooks still fire.
func BuildPlanar(bopts ...BuilderOption) (*core.Graph, Stats, error) {
	var st Stats
	base := newBuilderConfig(bopts...)
	userAccept, userReject := base.onAccept, base.onReject

	opts := make([]BuilderOption, 0, len(bopts)+2)
	opts = append(opts, bopts...)
	opts = append(opts,
		WithOnAccept(func(e core.Edge) {
			st.Proposed++
			st.Accepted++
			userAccept(e)
		}),
		WithOnReject(func(proposed, blocking core.Edge) {
			st.Proposed++
			st.Rejected++
			userReject(proposed, blocking)
		}),
	)

	g, err := BuildGraph(opts, PlanarRandom())
	if err != nil {
		return nil, Stats{}, err
	}
	return g, st, nil
}
