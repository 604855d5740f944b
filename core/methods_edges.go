// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns edges in commit order.
//   - Neighbor lists grow in commit order on both endpoints.

package core

import "fmt"

// AddEdge commits the undirected edge {u,v}.
//
// Steps:
//  1. Reject u == v (ErrLoopNotAllowed).
//  2. Resolve both endpoints (ErrVertexNotFound).
//  3. Reject an already present pair (ErrDuplicateEdge).
//  4. Append v to u's neighbors and u to v's neighbors; record Edge{u,v}.
//
// The graph is left untouched on any error, so symmetry holds unconditionally.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return fmt.Errorf("core: AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	vu, ok := g.index[u]
	if !ok {
		return fmt.Errorf("core: AddEdge(%d,%d): endpoint %d: %w", u, v, u, ErrVertexNotFound)
	}
	vv, ok := g.index[v]
	if !ok {
		return fmt.Errorf("core: AddEdge(%d,%d): endpoint %d: %w", u, v, v, ErrVertexNotFound)
	}
	key := pairKey(u, v)
	if _, dup := g.pairs[key]; dup {
		return fmt.Errorf("core: AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}

	vu.neighbors = append(vu.neighbors, vv)
	vv.neighbors = append(vv.neighbors, vu)
	g.pairs[key] = struct{}{}
	g.edges = append(g.edges, Edge{U: u, V: v})

	return nil
}

// HasEdge reports whether {u,v} is present (orientation-free).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.pairs[pairKey(u, v)]
	return ok
}

// Edges returns a copy of the committed edges in commit order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }
