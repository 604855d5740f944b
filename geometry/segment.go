// SPDX-License-Identifier: MIT
//
// File: segment.go
// Role: Bounded segment intersection predicate.
//
// Numeric policy:
//   - float64 intermediates; integer-valued inputs up to ~1e5 stay exact.
//   - "Parallel" is an exact zero test on the determinant, no epsilon.
//     Collinear overlapping segments are therefore reported as disjoint.
//   - Containment compares parameter numerators against den, never the
//     rounded coordinates of the crossing point.

package geometry

import "github.com/jbeda/geom"

// Segment is a closed straight segment between A and B.
type Segment struct {
	A geom.Coord
	B geom.Coord
}

// Bounds returns the axis-aligned bounding box of s.
func (s Segment) Bounds() geom.Rect {
	r := geom.Rect{Min: s.A, Max: s.A}
	r.ExpandToContainCoord(s.B)
	return r
}

// Crosses reports whether s and o intersect within their own bounds.
// See Intersects.
func (s Segment) Crosses(o Segment) bool {
	return Intersects(s.A, s.B, o.A, o.B)
}

// Intersects reports whether segment a–b and segment c–d intersect.
//
// Implementation:
//   - Stage 1: den = (x1−x2)(y3−y4) − (y1−y2)(x3−x4). den == 0 ⇒ parallel ⇒ false.
//   - Stage 2: Express the common point P of the two infinite lines by its
//     parameter on each segment: P = a + t·(b−a) = c + u·(d−c), with
//     t = tNum/den and u = uNum/den.
//   - Stage 3: P lies in the bounding box of a–b exactly when 0 ≤ t ≤ 1,
//     and in that of c–d when 0 ≤ u ≤ 1. Both are checked inclusively on
//     the numerators, so no division happens.
//
// Comparing parameters instead of the rounded coordinates of P keeps the
// test exact for axis-parallel segments at non-integer positions, where
// the box has zero width.
//
// Complexity: O(1). Pure.
func Intersects(a, b, c, d geom.Coord) bool {
	den, tNum, uNum := params(a, b, c, d)
	if den == 0 {
		return false
	}
	return within(tNum, den) && within(uNum, den)
}

// Intersection returns the common point of lines a–b and c–d and whether
// it lies on both segments (see Intersects). For parallel input the point
// is the zero Coord and ok is false.
func Intersection(a, b, c, d geom.Coord) (p geom.Coord, ok bool) {
	den, tNum, uNum := params(a, b, c, d)
	if den == 0 {
		return geom.Coord{}, false
	}
	p = a.Plus(b.Minus(a).Times(tNum / den))
	return p, within(tNum, den) && within(uNum, den)
}

// params returns the shared denominator and the numerators of t and u.
func params(a, b, c, d geom.Coord) (den, tNum, uNum float64) {
	den = (a.X-b.X)*(c.Y-d.Y) - (a.Y-b.Y)*(c.X-d.X)
	tNum = (a.X-c.X)*(c.Y-d.Y) - (a.Y-c.Y)*(c.X-d.X)
	uNum = (a.X-c.X)*(a.Y-b.Y) - (a.Y-c.Y)*(a.X-b.X)
	return den, tNum, uNum
}

// within reports 0 ≤ num/den ≤ 1 for den != 0.
func within(num, den float64) bool {
	if den < 0 {
		num, den = -num, -den
	}
	return 0 <= num && num <= den
}
