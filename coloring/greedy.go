// Package coloring assigns palette indices to the vertices of a core.Graph
// with a breadth-first greedy strategy.
//
// Greedy is a heuristic, not a proof-grade four-coloring. A vertex is
// colored when it is dequeued, looking only at the colors its neighbors
// hold at that moment; neighbors still at core.NoColor never block a color.
// Graphs that need backtracking can end with conflicting edges or with
// vertices for which every color was taken. Both outcomes are reported in
// the Result, never raised as errors.
package coloring

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/planarcolor/core"
)

// visitState tracks a vertex through unvisited → queued → colored.
type visitState uint8

const (
	unvisited visitState = iota
	queued
	colored
)

// walker encapsulates mutable traversal state.
type walker struct {
	opts  Options
	queue *linkedlistqueue.Queue
	state map[int]visitState
	res   *Result
}

// Greedy colors g breadth-first from startID.
//
// Steps:
//  1. Every vertex is reset to NoColor.
//  2. The root gets color 0 unconditionally and keeps it.
//  3. Each dequeued vertex takes the lowest color c in [0,k) that differs
//     from its own current color and from every neighbor's current color.
//  4. Unvisited neighbors are enqueued in adjacency order and marked at
//     enqueue time, so no vertex is queued twice.
//  5. With WithAllComponents, steps 2–4 repeat from each still-unvisited
//     vertex in insertion order; otherwise those vertices stay NoColor.
//
// Returns ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound for
// invalid input.
//
// Complexity: O(V + E·k) time, O(V) memory.
func Greedy(g *core.Graph, startID int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	start, err := g.Vertex(startID)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, startID)
	}

	g.ResetColors()
	n := g.VertexCount()
	w := &walker{
		opts:  o,
		queue: linkedlistqueue.New(),
		state: make(map[int]visitState, n),
		res: &Result{
			Order: make([]int, 0, n),
		},
	}

	w.traverse(start)
	if o.AllComponents {
		for _, v := range g.Vertices() {
			if w.state[v.ID] == unvisited {
				w.traverse(v)
			}
		}
	}

	for _, v := range g.Vertices() {
		if !v.Color.Valid() {
			w.res.Uncolored = append(w.res.Uncolored, v.ID)
		}
	}
	w.res.Conflicts = Conflicts(g)

	return w.res, nil
}

// traverse runs one BFS rooted at root.
func (w *walker) traverse(root *core.Vertex) {
	w.res.Roots = append(w.res.Roots, root.ID)
	root.Color = 0
	w.enqueue(root)

	for !w.queue.Empty() {
		item, _ := w.queue.Dequeue()
		v := item.(*core.Vertex)
		if v != root {
			w.recolor(v)
		}
		w.state[v.ID] = colored
		w.res.Order = append(w.res.Order, v.ID)
		if v.Color.Valid() {
			w.opts.OnColor(v.ID, v.Color)
		}

		for _, nbr := range v.Neighbors() {
			if w.state[nbr.ID] == unvisited {
				w.enqueue(nbr)
			}
		}
	}
}

// enqueue marks v queued and appends it to the FIFO.
func (w *walker) enqueue(v *core.Vertex) {
	w.state[v.ID] = queued
	w.queue.Enqueue(v)
}

// recolor assigns v the lowest admissible color, or leaves it NoColor and
// records it as exhausted.
func (w *walker) recolor(v *core.Vertex) {
	for c := core.Color(0); int(c) < w.opts.NumColors; c++ {
		// never re-pick the color v already holds
		if c == v.Color {
			continue
		}
		if !usedByNeighbor(v, c) {
			v.Color = c
			return
		}
	}
	w.res.Exhausted = append(w.res.Exhausted, v.ID)
}

// usedByNeighbor reports whether any neighbor currently holds c.
func usedByNeighbor(v *core.Vertex, c core.Color) bool {
	for _, n := range v.Neighbors() {
		if n.Color == c {
			return true
		}
	}
	return false
}

// Conflicts returns the edges, in commit order, whose endpoints hold the
// same valid color.
// Complexity: O(E).
func Conflicts(g *core.Graph) []core.Edge {
	var out []core.Edge
	for _, e := range g.Edges() {
		u, _ := g.Vertex(e.U)
		v, _ := g.Vertex(e.V)
		if u.Color.Valid() && u.Color == v.Color {
			out = append(out, e)
		}
	}
	return out
}
