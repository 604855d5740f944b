package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/planarcolor/builder"
	"github.com/katalvlaran/planarcolor/coloring"
	"github.com/katalvlaran/planarcolor/core"
)

// colorsOf returns vertex colors in insertion order.
func colorsOf(g *core.Graph) []core.Color {
	vs := g.Vertices()
	out := make([]core.Color, len(vs))
	for i, v := range vs {
		out[i] = v.Color
	}
	return out
}

// edgeless returns n isolated vertices.
func edgeless(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, err := g.AddVertex(i)
		require.NoError(t, err)
	}
	return g
}

// TestGreedy_Errors verifies that invalid inputs and options are rejected.
func TestGreedy_Errors(t *testing.T) {
	_, err := coloring.Greedy(nil, 0)
	require.ErrorIs(t, err, coloring.ErrGraphNil)

	g := edgeless(t, 1)
	_, err = coloring.Greedy(g, 5)
	require.ErrorIs(t, err, coloring.ErrStartVertexNotFound)

	_, err = coloring.Greedy(g, 0, coloring.WithNumColors(0))
	require.ErrorIs(t, err, coloring.ErrOptionViolation)
}

// TestGreedy_SingleEdge: vertex 0 gets 0, vertex 1 the lowest color ≠ 0.
func TestGreedy_SingleEdge(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(2))
	require.NoError(t, err)

	res, err := coloring.Greedy(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.Color{0, 1}, colorsOf(g))
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.True(t, res.Proper())
}

// TestGreedy_Square: the 4-cycle alternates from any start.
func TestGreedy_Square(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)

	want := map[int][]core.Color{
		0: {0, 1, 0, 1},
		1: {1, 0, 1, 0},
		2: {0, 1, 0, 1},
		3: {1, 0, 1, 0},
	}
	for start, colors := range want {
		res, err := coloring.Greedy(g, start)
		require.NoError(t, err)
		assert.Equal(t, colors, colorsOf(g), "start %d", start)
		assert.True(t, res.Proper(), "start %d", start)
		assert.Equal(t, start, res.Order[0])
	}
}

// TestGreedy_Edgeless: without the extension only the start is reached;
// with it every vertex is its own root and gets color 0.
func TestGreedy_Edgeless(t *testing.T) {
	g := edgeless(t, 4)

	res, err := coloring.Greedy(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.Color{0, core.NoColor, core.NoColor, core.NoColor}, colorsOf(g))
	assert.Equal(t, []int{1, 2, 3}, res.Uncolored)
	assert.False(t, res.Proper())

	res, err = coloring.Greedy(g, 0, coloring.WithAllComponents())
	require.NoError(t, err)
	assert.Equal(t, []core.Color{0, 0, 0, 0}, colorsOf(g))
	assert.Equal(t, []int{0, 1, 2, 3}, res.Roots)
	assert.Empty(t, res.Uncolored)
	assert.True(t, res.Proper())
}

// TestGreedy_Disconnected: a second component is untouched unless requested.
func TestGreedy_Disconnected(t *testing.T) {
	g := edgeless(t, 4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 3))

	res, err := coloring.Greedy(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.Color{core.NoColor, core.NoColor, 0, 1}, colorsOf(g))
	assert.Equal(t, []int{2, 3}, res.Order)

	res, err = coloring.Greedy(g, 2, coloring.WithAllComponents())
	require.NoError(t, err)
	assert.Equal(t, []core.Color{0, 1, 0, 1}, colorsOf(g))
	assert.Equal(t, []int{2, 0}, res.Roots)
}

// TestGreedy_Exhausted: a triangle cannot be 2-colored; the last vertex
// finds every color taken and is reported, not raised.
func TestGreedy_Exhausted(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(3))
	require.NoError(t, err)

	res, err := coloring.Greedy(g, 0, coloring.WithNumColors(2))
	require.NoError(t, err)
	assert.Equal(t, []core.Color{0, 1, core.NoColor}, colorsOf(g))
	assert.Equal(t, []int{2}, res.Exhausted)
	assert.Equal(t, []int{2}, res.Uncolored)
	assert.Empty(t, res.Conflicts)
}

// TestGreedy_OnColorAndReset: the hook sees the coloring order, and a
// second run starts from a clean slate.
func TestGreedy_OnColorAndReset(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)

	var seen []int
	res, err := coloring.Greedy(g, 1, coloring.WithOnColor(func(id int, c core.Color) {
		seen = append(seen, id)
		assert.True(t, c.Valid())
	}))
	require.NoError(t, err)
	assert.Equal(t, res.Order, seen)
	assert.Equal(t, []core.Color{1, 0, 1}, colorsOf(g))

	_, err = coloring.Greedy(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.Color{0, 1, 0}, colorsOf(g))
}

// TestConflicts checks detection on a hand-colored graph.
func TestConflicts(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	assert.Empty(t, coloring.Conflicts(g), "uncolored endpoints never conflict")

	for _, v := range g.Vertices() {
		v.Color = 2
	}
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, coloring.Conflicts(g))
}

// RandomPlanarSuite checks the coloring contract over generated graphs.
type RandomPlanarSuite struct {
	suite.Suite
}

func TestRandomPlanarSuite(t *testing.T) {
	suite.Run(t, new(RandomPlanarSuite))
}

// TestStartAndReachability: start is always 0; with k > max degree every
// reachable vertex gets a color in [0,k).
func (s *RandomPlanarSuite) TestStartAndReachability() {
	for seed := int64(0); seed < 40; seed++ {
		g, _, err := builder.BuildPlanar(builder.WithSeed(seed))
		s.Require().NoError(err)
		k := g.Stats().MaxDegree + 1

		res, err := coloring.Greedy(g, 0, coloring.WithNumColors(k))
		s.Require().NoError(err)

		start, _ := g.Vertex(0)
		s.Require().Equal(core.Color(0), start.Color, "seed %d", seed)
		s.Require().Empty(res.Exhausted, "seed %d", seed)
		for _, id := range res.Order {
			v, _ := g.Vertex(id)
			s.Require().True(v.Color.Valid(), "seed %d vertex %d", seed, id)
			s.Require().Less(int(v.Color), k)
		}
		s.Require().Empty(res.Conflicts, "seed %d", seed)
	}
}

// TestFourColorsReported: with the default palette outcomes are either a
// color in [0,4) or an entry in Exhausted/Uncolored; nothing is silent.
func (s *RandomPlanarSuite) TestFourColorsReported() {
	for seed := int64(100); seed < 140; seed++ {
		g, _, err := builder.BuildPlanar(builder.WithSeed(seed))
		s.Require().NoError(err)

		res, err := coloring.Greedy(g, 0, coloring.WithAllComponents())
		s.Require().NoError(err)
		s.Require().Len(res.Order, g.VertexCount())

		exhausted := make(map[int]bool, len(res.Exhausted))
		for _, id := range res.Exhausted {
			exhausted[id] = true
		}
		for _, v := range g.Vertices() {
			if exhausted[v.ID] {
				s.Require().False(v.Color.Valid())
				continue
			}
			s.Require().True(v.Color.Valid())
			s.Require().Less(int(v.Color), coloring.DefaultNumColors)
		}
		s.Require().Equal(len(res.Exhausted), len(res.Uncolored))
	}
}
