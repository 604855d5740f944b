// Package planarcolor builds random crossing-free graphs and colors them.
//
// The pipeline runs in four stages, each in its own subpackage:
//
//	builder/  random graph with planar-avoidance edge admission
//	geometry/ segment intersection test used by the builder
//	layout/   circular placement and degree-based vertex sizes
//	coloring/ greedy breadth-first k-coloring (k = 4 by default)
//	render/   PNG, SVG and text output
//
// core/ holds the shared Graph, Vertex and Edge types. cmd/planarcolor
// wires the stages into a command-line tool.
//
// Quick example:
//
//	g, _, _ := builder.BuildPlanar(builder.WithSeed(42))
//	_ = layout.Circular(g)
//	res, _ := coloring.Greedy(g, 0)
//	fmt.Println(res.Proper())
//
// The builder only guarantees that no two committed edges cross at the
// positions it used. Greedy coloring is a heuristic: it may run out of
// colors or leave unreachable vertices uncolored, and reports both.
package planarcolor
