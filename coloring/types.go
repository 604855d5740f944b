// Package coloring provides tunable options and error definitions
// for greedy breadth-first coloring over a core.Graph.
package coloring

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/planarcolor/core"
)

// Sentinel errors for coloring execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("coloring: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("coloring: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coloring: invalid option supplied")
)

// DefaultNumColors is the palette size of the four-color scheme.
const DefaultNumColors = 4

// Option configures Greedy via functional arguments.
// If an Option is invalid (e.g. zero colors), it is recorded internally
// and surfaced as ErrOptionViolation when Greedy is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize greedy coloring.
type Options struct {
	// NumColors is the palette size k; colors are 0..k-1.
	NumColors int

	// AllComponents restarts the traversal at every vertex still uncolored
	// after the start component, in insertion order. Off by default: the
	// plain traversal leaves unreachable vertices at core.NoColor.
	AllComponents bool

	// OnColor is called after each vertex receives a color.
	OnColor func(id int, c core.Color)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with four colors, a single component
// and a no-op OnColor hook.
func DefaultOptions() Options {
	return Options{
		NumColors: DefaultNumColors,
		OnColor:   func(int, core.Color) {},
	}
}

// WithNumColors sets the palette size; k < 1 is a violation.
func WithNumColors(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: NumColors must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.NumColors = k
	}
}

// WithAllComponents enables the outer loop over uncolored vertices.
func WithAllComponents() Option {
	return func(o *Options) { o.AllComponents = true }
}

// WithOnColor registers a callback run after each assignment.
func WithOnColor(fn func(id int, c core.Color)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnColor = fn
		}
	}
}

// Result holds the outcome of a greedy coloring:
//   - Order: vertices in the order they were colored.
//   - Roots: traversal roots (the start vertex, then component roots).
//   - Uncolored: vertices left at NoColor, in insertion order.
//   - Exhausted: visited vertices for which every color was taken.
//   - Conflicts: edges whose endpoints ended with the same color.
type Result struct {
	Order     []int
	Roots     []int
	Uncolored []int
	Exhausted []int
	Conflicts []core.Edge
}

// Proper reports whether every vertex got a color and no edge conflicts.
func (r *Result) Proper() bool {
	return len(r.Uncolored) == 0 && len(r.Conflicts) == 0
}
