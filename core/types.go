// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Color and Graph declarations, sentinel errors, NewGraph.
//
// Policy:
//   - The Graph owns every Vertex; neighbor lists hold non-owning pointers.
//   - Adjacency is symmetric, loop-free and duplicate-free at all times.
//   - Nothing is ever removed once added.

package core

import (
	"errors"
	"strconv"

	"github.com/jbeda/geom"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexID indicates a negative vertex identifier.
	ErrBadVertexID = errors.New("core: vertex ID is negative")

	// ErrDuplicateVertex indicates AddVertex was called twice with the same ID.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the edge {u,v} is already present.
	ErrDuplicateEdge = errors.New("core: edge already exists")
)

// Color is a palette index assigned by a colorer.
//
// NoColor is the distinct "not yet colored" state. It never equals a valid
// index in [0,k), so an uncolored neighbor can never be mistaken for a
// neighbor holding color 0.
type Color int

// NoColor marks a vertex that has not been colored.
const NoColor Color = -1

// Valid reports whether c holds an assigned palette index.
func (c Color) Valid() bool { return c >= 0 }

// String renders the index, or "-" for NoColor.
func (c Color) String() string {
	if !c.Valid() {
		return "-"
	}
	return strconv.Itoa(int(c))
}

// Vertex represents a node in the graph.
//
// Pos is written by the builder (provisional placement) and by the layout;
// Size by the layout; Color by the colorer. ID never changes.
type Vertex struct {
	// ID is the stable insertion index of this Vertex.
	ID int

	// Pos is the anchor position of the vertex on the canvas.
	Pos geom.Coord

	// Size is the display size derived from the degree (see layout).
	Size int

	// Color is the assigned palette index or NoColor.
	Color Color

	// neighbors in edge-commit order; never contains the vertex itself.
	neighbors []*Vertex
}

// Neighbors returns the adjacent vertices in edge-commit order.
// The slice is a copy; the pointed-to vertices are live.
func (v *Vertex) Neighbors() []*Vertex {
	out := make([]*Vertex, len(v.neighbors))
	copy(out, v.neighbors)
	return out
}

// Degree returns the number of neighbors.
func (v *Vertex) Degree() int { return len(v.neighbors) }

// Edge is an undirected, unweighted connection between vertex U and V.
// Edges returned by Graph.Edges keep the (U,V) orientation given to AddEdge.
type Edge struct {
	U int
	V int
}

// Has reports whether id is one of the endpoints.
func (e Edge) Has(id int) bool { return e.U == id || e.V == id }

// SharesEndpoint reports whether e and o have at least one endpoint in common.
func (e Edge) SharesEndpoint(o Edge) bool { return e.Has(o.U) || e.Has(o.V) }

// Graph is an insertion-ordered, simple, undirected graph.
//
// A Graph is not safe for concurrent mutation. The pipeline hands it from
// builder to layout to colorer to renderer sequentially.
type Graph struct {
	vertices []*Vertex           // insertion order
	index    map[int]*Vertex     // ID -> Vertex
	edges    []Edge              // commit order
	pairs    map[[2]int]struct{} // normalized (min,max) edge keys
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index: make(map[int]*Vertex),
		pairs: make(map[[2]int]struct{}),
	}
}

// pairKey normalizes an unordered pair.
func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}
