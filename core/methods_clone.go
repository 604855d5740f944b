// File: methods_clone.go
// Role: Deep copy of a Graph.

package core

// Clone returns a deep copy of g: new Vertex values carrying the same
// ID/Pos/Size/Color, with neighbor pointers remapped into the copy.
// No Vertex pointer is shared between g and the clone.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		vertices: make([]*Vertex, len(g.vertices)),
		index:    make(map[int]*Vertex, len(g.vertices)),
		edges:    make([]Edge, len(g.edges)),
		pairs:    make(map[[2]int]struct{}, len(g.pairs)),
	}
	for i, v := range g.vertices {
		nv := &Vertex{ID: v.ID, Pos: v.Pos, Size: v.Size, Color: v.Color}
		c.vertices[i] = nv
		c.index[v.ID] = nv
	}
	for i, v := range g.vertices {
		nbrs := make([]*Vertex, len(v.neighbors))
		for j, n := range v.neighbors {
			nbrs[j] = c.index[n.ID]
		}
		c.vertices[i].neighbors = nbrs
	}
	copy(c.edges, g.edges)
	for k := range g.pairs {
		c.pairs[k] = struct{}{}
	}

	return c
}
