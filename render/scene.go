package render

import (
	"github.com/jbeda/geom"

	"github.com/katalvlaran/planarcolor/core"
)

// square returns the drawn extent of v.
func square(v *core.Vertex) geom.Rect {
	s := float64(v.Size)
	return geom.Rect{
		Min: geom.Coord{X: v.Pos.X - s, Y: v.Pos.Y - s},
		Max: geom.Coord{X: v.Pos.X + s, Y: v.Pos.Y + s},
	}
}

// Bounds returns the smallest rectangle holding every vertex square and
// edge anchor. An empty graph yields the zero Rect.
func Bounds(g *core.Graph) geom.Rect {
	vs := g.Vertices()
	if len(vs) == 0 {
		return geom.Rect{}
	}
	r := square(vs[0])
	for _, v := range vs[1:] {
		r.ExpandToContainRect(square(v))
	}
	return r
}

// clipSegment trims the segment a→b to r (Liang–Barsky). ok is false when
// nothing of the segment lies inside r.
func clipSegment(a, b geom.Coord, r geom.Rect) (geom.Coord, geom.Coord, bool) {
	d := b.Minus(a)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, a.X - r.Min.X},
		{d.X, r.Max.X - a.X},
		{-d.Y, a.Y - r.Min.Y},
		{d.Y, r.Max.Y - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return a, b, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return a.Plus(d.Times(t0)), a.Plus(d.Times(t1)), true
}
