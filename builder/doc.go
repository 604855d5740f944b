// Package builder provides “functional-options”-style graph constructors.
// Its centerpiece is PlanarRandom: a random graph whose straight-line edges
// do not cross when vertices sit on a circle.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...) runs constructors in order on a fresh graph.
//     – BuildPlanar(bopts...) builds one PlanarRandom graph and returns Stats.
//   - Constructors:
//     – PlanarRandom():  N ∈ [min,max], coin per unordered pair, crossing-free admission.
//     – Cycle(n), Path(n): deterministic fixtures with the same placement.
//   - Configuration primitives (BuilderOption):
//     – WithSeed / WithRand:        injected randomness (never wall-clock).
//     – WithVertexRange / WithVertexCount.
//     – WithEdgeProbability:        default 0.5.
//     – WithPlacement / WithCanvas: provisional positions for crossing tests.
//     – WithOnAccept / WithOnReject: admission hooks.
//
// Crossing tests and placement:
//
//	Edges are admitted while the final layout is still unknown, because the
//	circular layout depends on vertex degrees. With PlacementRing (default)
//	the N vertices are first spread evenly on the canvas circle and those
//	positions are used for every crossing test; the result is crossing-free
//	for that ring. PlacementOrigin keeps every vertex at (0,0), which turns
//	each test into a parallel-segment case and admits every proposal.
//
// Guarantees:
//
//   - Same seed and options ⇒ identical vertex count and edge list.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime validation errors wrap sentinels (errors.Is): ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
package builder
