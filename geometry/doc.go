// Package geometry implements the segment-crossing predicate used to keep
// randomly generated edges from crossing when drawn as straight lines.
//
// Intersects works on github.com/jbeda/geom coordinates and is a pure
// function. It is a heuristic building block, not a robust geometric
// kernel: parallel segments (including collinear overlapping ones) are
// reported as disjoint, and touching at a bound counts as crossing.
package geometry
