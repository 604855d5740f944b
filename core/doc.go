// Package core provides the in-memory graph model shared by the builder,
// layout, coloring and render packages.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted, simple: no self-loops, no parallel edges.
//   - Vertices are identified by a stable integer index and kept in
//     insertion order; edges are kept in commit order.
//   - Each Vertex carries presentation and coloring state (Pos, Size,
//     Color) next to its neighbor list, so one structure flows through
//     the whole pipeline.
//   - Neighbor lists are non-owning *Vertex references; the Graph owns
//     every Vertex exclusively and nothing is ever deleted.
//
// Invariants:
//
//	symmetry  – u ∈ N(v) ⇔ v ∈ N(u)
//	no loops  – v ∉ N(v)
//	no dups   – AddEdge rejects an existing pair with ErrDuplicateEdge
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int) (*Vertex, error)   // O(1)
//	Vertex(id int) (*Vertex, error)      // O(1)
//	HasVertex(id int) bool               // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error              // O(1)
//	HasEdge(u, v int) bool               // O(1)
//
//	// Query
//	Vertices() []*Vertex                 // O(V), insertion order
//	Edges() []Edge                       // O(E), commit order
//	Neighbors(id int) ([]*Vertex, error) // O(d), commit order
//	NeighborIDs(id int) ([]int, error)   // O(d)
//	AdjacencyList() map[int][]int        // O(V+E)
//	Degree(id int) (int, error)          // O(1)
//	Stats() *GraphStats                  // O(V)
//
//	// Maintenance
//	ResetColors()                        // O(V)
//	Clone() *Graph                       // O(V+E)
//
// Colors:
//
//	Color values in [0,k) are palette indices. NoColor (-1) is the
//	separate "not colored yet" state; it is never a valid index, so it
//	cannot collide with color 0 during neighbor checks.
//
// Errors:
//
//	ErrBadVertexID     – negative vertex ID
//	ErrDuplicateVertex – AddVertex on an existing ID
//	ErrVertexNotFound  – missing vertex
//	ErrLoopNotAllowed  – AddEdge(v, v)
//	ErrDuplicateEdge   – AddEdge on an existing pair (either orientation)
//
// Concurrency:
//
//	A Graph is not goroutine-safe. It is owned by one caller at a time and
//	handed along the pipeline sequentially.
package core
