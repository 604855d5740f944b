// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in insertion/commit ordering guarantees.
//   - Validate the defensive rejection of loops, duplicates and unknown endpoints.

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarcolor/core"
)

// TestGraph_AddVertex verifies ID validation and the initial vertex state.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	v, err := g.AddVertex(V0)
	require.NoError(t, err)
	assert.Equal(t, V0, v.ID)
	assert.Equal(t, core.NoColor, v.Color)
	assert.False(t, v.Color.Valid())
	assert.Zero(t, v.Degree())
	assert.True(t, g.HasVertex(V0))

	_, err = g.AddVertex(V0)
	require.ErrorIs(t, err, core.ErrDuplicateVertex)

	_, err = g.AddVertex(-1)
	require.ErrorIs(t, err, core.ErrBadVertexID)

	require.Equal(t, 1, g.VertexCount())
}

// TestGraph_VertexOrder verifies that Vertices() keeps insertion order,
// not ID order.
func TestGraph_VertexOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []int{3, 1, 2} {
		_, err := g.AddVertex(id)
		require.NoError(t, err)
	}
	require.Equal(t, []int{3, 1, 2}, g.VertexIDs())

	vs := g.Vertices()
	require.Len(t, vs, 3)
	assert.Equal(t, 3, vs[0].ID)
	assert.Equal(t, 2, vs[2].ID)
}

// TestGraph_AddEdge covers the defensive preconditions and the symmetric append.
func TestGraph_AddEdge(t *testing.T) {
	g := newPathGraph(t, 3)

	tests := []struct {
		name string
		u, v int
		want error
	}{
		{"loop", V1, V1, core.ErrLoopNotAllowed},
		{"missing u", 9, V1, core.ErrVertexNotFound},
		{"missing v", V1, 9, core.ErrVertexNotFound},
		{"duplicate", V0, V1, core.ErrDuplicateEdge},
		{"duplicate reversed", V1, V0, core.ErrDuplicateEdge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := g.AddEdge(tc.u, tc.v)
			require.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}

	// Failed calls leave the graph unchanged.
	require.Equal(t, 2, g.EdgeCount())
	requireSymmetric(t, g)

	require.NoError(t, g.AddEdge(V2, V0))
	assert.True(t, g.HasEdge(V0, V2))
	assert.True(t, g.HasEdge(V2, V0))
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}, g.Edges())
	requireSymmetric(t, g)
}

// TestGraph_NeighborOrder verifies that neighbor lists grow in commit order.
func TestGraph_NeighborOrder(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		_, err := g.AddVertex(i)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdge(V0, V3))
	require.NoError(t, g.AddEdge(V0, V1))
	require.NoError(t, g.AddEdge(V2, V0))

	ids, err := g.NeighborIDs(V0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, ids)

	d, err := g.Degree(V0)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	_, err = g.Neighbors(42)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(42)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_Clone verifies the copy is deep and independent.
func TestGraph_Clone(t *testing.T) {
	g := newPathGraph(t, 3)
	v1, err := g.Vertex(V1)
	require.NoError(t, err)
	v1.Color = 2
	v1.Size = 60

	c := g.Clone()
	require.Equal(t, g.AdjacencyList(), c.AdjacencyList())
	require.Equal(t, g.Edges(), c.Edges())

	cv1, err := c.Vertex(V1)
	require.NoError(t, err)
	assert.Equal(t, core.Color(2), cv1.Color)
	assert.Equal(t, 60, cv1.Size)
	assert.NotSame(t, v1, cv1)
	for _, n := range cv1.Neighbors() {
		orig, _ := g.Vertex(n.ID)
		assert.NotSame(t, orig, n, "neighbor %d shared with source graph", n.ID)
	}

	require.NoError(t, c.AddEdge(V0, V2))
	assert.False(t, g.HasEdge(V0, V2), "mutating clone must not affect source")
	requireSymmetric(t, c)
}

// TestGraph_StatsAndReset checks the summary counters and ResetColors.
func TestGraph_StatsAndReset(t *testing.T) {
	g := newPathGraph(t, 3)
	_, err := g.AddVertex(7)
	require.NoError(t, err)

	v0, _ := g.Vertex(V0)
	v0.Color = 0

	s := g.Stats()
	assert.Equal(t, 4, s.VertexCount)
	assert.Equal(t, 2, s.EdgeCount)
	assert.Equal(t, 2, s.MaxDegree)
	assert.Equal(t, 1, s.IsolatedCount)
	assert.Equal(t, 1, s.ColoredCount)

	g.ResetColors()
	assert.Zero(t, g.Stats().ColoredCount)
}
