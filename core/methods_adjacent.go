// File: methods_adjacent.go
// Role: Neighborhood queries.
//
// Determinism:
//   - Neighbor order is the order in which incident edges were committed.

package core

// Neighbors returns the live neighbor vertices of id in commit order.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
//
// Complexity:
//   - Time O(d), Space O(d).
func (g *Graph) Neighbors(id int) ([]*Vertex, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return nil, err
	}
	return v.Neighbors(), nil
}

// NeighborIDs returns the IDs of id's neighbors in commit order.
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(v.neighbors))
	for i, n := range v.neighbors {
		out[i] = n.ID
	}
	return out, nil
}

// AdjacencyList returns a snapshot map ID -> neighbor IDs (commit order).
// Complexity: O(V+E).
func (g *Graph) AdjacencyList() map[int][]int {
	out := make(map[int][]int, len(g.vertices))
	for _, v := range g.vertices {
		ids := make([]int, len(v.neighbors))
		for i, n := range v.neighbors {
			ids[i] = n.ID
		}
		out[v.ID] = ids
	}
	return out
}
