// Package layout provides tunable options and error definitions
// for placing vertices of a core.Graph on a circle.
package layout

import (
	"errors"
	"fmt"

	"github.com/jbeda/geom"
)

// Sentinel errors for layout execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("layout: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("layout: invalid option supplied")
)

// Default canvas: 640×640 with a 20px vertex unit.
const (
	DefaultCanvasWidth  = 640
	DefaultCanvasHeight = 640
	DefaultVertexRadius = 20
)

// Option configures the layout via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation
// when Circular is invoked.
type Option func(*Config)

// Config holds the circle and sizing parameters.
type Config struct {
	// Center is the circle center.
	Center geom.Coord

	// Radius is the circle radius (> 0).
	Radius float64

	// VertexRadius is the base size unit: size = 2·unit + degree·unit.
	VertexRadius int

	// internal error recorded during option parsing
	err error
}

// DefaultConfig returns the default layout: center of a 640×640 canvas,
// radius = width/2 − VertexRadius, unit 20.
func DefaultConfig() Config {
	return canvasConfig(DefaultCanvasWidth, DefaultCanvasHeight, DefaultVertexRadius)
}

func canvasConfig(width, height, unit int) Config {
	return Config{
		Center:       geom.Coord{X: float64(width / 2), Y: float64(height / 2)},
		Radius:       float64(width/2 - unit),
		VertexRadius: unit,
	}
}

// NewConfig applies opts over DefaultConfig and reports the first violation.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}
	return cfg, nil
}

// WithCanvas derives center and radius from a canvas size, keeping the
// current vertex unit as margin.
func WithCanvas(width, height int) Option {
	return func(c *Config) {
		if width <= 0 || height <= 0 {
			c.err = fmt.Errorf("%w: canvas must be positive (%dx%d)", ErrOptionViolation, width, height)
			return
		}
		unit, prev := c.VertexRadius, c.err
		*c = canvasConfig(width, height, unit)
		c.err = prev
		if c.Radius <= 0 {
			c.err = fmt.Errorf("%w: canvas width %d leaves no radius for unit %d", ErrOptionViolation, width, unit)
		}
	}
}

// WithCenter sets the circle center.
func WithCenter(center geom.Coord) Option {
	return func(c *Config) { c.Center = center }
}

// WithRadius sets the circle radius; r <= 0 is a violation.
func WithRadius(r float64) Option {
	return func(c *Config) {
		if r <= 0 {
			c.err = fmt.Errorf("%w: radius must be positive (%g)", ErrOptionViolation, r)
			return
		}
		c.Radius = r
	}
}

// WithVertexRadius sets the base size unit; u <= 0 is a violation.
func WithVertexRadius(u int) Option {
	return func(c *Config) {
		if u <= 0 {
			c.err = fmt.Errorf("%w: vertex radius must be positive (%d)", ErrOptionViolation, u)
			return
		}
		c.VertexRadius = u
	}
}
