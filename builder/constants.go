// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildGraph is the canonical name for the BuildGraph orchestrator.
	MethodBuildGraph = "BuildGraph"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodPlanarRandom is the canonical name for the PlanarRandom constructor.
	MethodPlanarRandom = "PlanarRandom"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a valid ring without loops
// or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
// A path of fewer than 2 nodes has no edges.
const MinPathNodes = 2

// MinPlanarVertices is the smallest vertex count accepted by PlanarRandom.
const MinPlanarVertices = 1

//-----------------------------------------------------------------------------
// Random Planar Defaults
//-----------------------------------------------------------------------------

// DefaultMinVertices and DefaultMaxVertices bound the random vertex count
// (inclusive on both ends).
const (
	DefaultMinVertices = 10
	DefaultMaxVertices = 20
)

// DefaultEdgeProbability is the fair coin used to propose each unordered pair.
const DefaultEdgeProbability = 0.5

// MinProbability and MaxProbability bound valid edge probabilities.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

//-----------------------------------------------------------------------------
// Canvas Defaults (provisional ring placement)
//-----------------------------------------------------------------------------

// Default canvas: 640×640, vertex margin 20.
const (
	DefaultCanvasSize   = 640
	DefaultVertexMargin = 20
)
