// Package layout assigns canvas positions and display sizes to vertices.
//
// Circular keeps a deliberate quirk: every vertex advances the running
// angle by 360/deg(v) degrees (its own degree, integer division), not by
// 360/|V|. Positions drift around the circle unevenly and may overlap.
// Degree-zero vertices step by a full 360° (degree treated as 1).
//
// Ring is the even placement used by the builder before edges exist.
package layout

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/planarcolor/core"
)

const fullTurn = 360

// Circular writes Pos and Size for every vertex of g in insertion order.
//
// For a vertex of degree d at running angle θ (degrees):
//
//	size = 2·unit + d·unit
//	x    = trunc(cx + r·cos θ) − size/2
//	y    = trunc(cy + r·sin θ) − size/2
//	θ   += AngleStep(d)
//
// Returns ErrGraphNil or ErrOptionViolation.
// Complexity: O(V).
func Circular(g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	cfg, err := NewConfig(opts...)
	if err != nil {
		return err
	}

	angle := 0
	for _, v := range g.Vertices() {
		deg := v.Degree()
		rad := float64(angle) * math.Pi / 180

		v.Size = SizeFor(deg, cfg.VertexRadius)
		half := float64(v.Size / 2)
		v.Pos = geom.Coord{
			X: math.Trunc(cfg.Center.X+cfg.Radius*math.Cos(rad)) - half,
			Y: math.Trunc(cfg.Center.Y+cfg.Radius*math.Sin(rad)) - half,
		}

		angle += AngleStep(deg)
	}

	return nil
}

// AngleStep returns the angular advance (degrees) for a vertex of the
// given degree.
func AngleStep(degree int) int {
	if degree < 1 {
		degree = 1
	}
	return fullTurn / degree
}

// SizeFor returns the display size for a vertex: 2·unit + degree·unit.
// Strictly increasing in degree for unit > 0.
func SizeFor(degree, unit int) int {
	return unit*2 + degree*unit
}

// Ring returns n points evenly spaced on the circle, starting at angle 0
// and proceeding counter-clockwise in math orientation.
// n <= 0 yields nil.
func Ring(n int, center geom.Coord, radius float64) []geom.Coord {
	if n <= 0 {
		return nil
	}
	pts := make([]geom.Coord, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.Coord{X: math.Cos(a), Y: math.Sin(a)}.Times(radius).Plus(center)
	}
	return pts
}

// Describe renders the layout parameters for diagnostics.
func (c Config) Describe() string {
	return fmt.Sprintf("center=(%g,%g) radius=%g unit=%d", c.Center.X, c.Center.Y, c.Radius, c.VertexRadius)
}
