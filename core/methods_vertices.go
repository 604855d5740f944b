// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and VertexIDs() return insertion order.

package core

import "fmt"

// AddVertex appends a new vertex with an empty neighbor list.
//
// Implementation:
//   - Stage 1: Validate the ID (non-negative, not yet present).
//   - Stage 2: Allocate the Vertex with Color=NoColor and a zero position.
//   - Stage 3: Register it in insertion order and in the ID index.
//
// Returns:
//   - *Vertex: the live vertex owned by g.
//   - error: ErrBadVertexID or ErrDuplicateVertex.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(id int) (*Vertex, error) {
	if id < 0 {
		return nil, fmt.Errorf("core: AddVertex(%d): %w", id, ErrBadVertexID)
	}
	if _, ok := g.index[id]; ok {
		return nil, fmt.Errorf("core: AddVertex(%d): %w", id, ErrDuplicateVertex)
	}

	v := &Vertex{ID: id, Color: NoColor}
	g.vertices = append(g.vertices, v)
	g.index[id] = v

	return v, nil
}

// Vertex returns the vertex with the given ID.
// Complexity: O(1).
func (g *Graph) Vertex(id int) (*Vertex, error) {
	v, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("core: Vertex(%d): %w", id, ErrVertexNotFound)
	}
	return v, nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.index[id]
	return ok
}

// Vertices returns the live vertices in insertion order.
// The slice is a copy; mutating it does not affect g.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// VertexIDs returns vertex IDs in insertion order.
func (g *Graph) VertexIDs() []int {
	out := make([]int, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.ID
	}
	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Degree returns the neighbor count of id.
func (g *Graph) Degree(id int) (int, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return 0, err
	}
	return v.Degree(), nil
}

// ResetColors sets every vertex back to NoColor.
// Complexity: O(V).
func (g *Graph) ResetColors() {
	for _, v := range g.vertices {
		v.Color = NoColor
	}
}
