// Package render draws a laid-out, colored core.Graph as PNG, SVG or text.
//
// The scene is a black background with one white line per edge between
// vertex anchors. Each vertex is a filled square spanning (x−size, y−size)
// to (x+size, y+size), drawn after the edges in insertion order.
// Vertices still at core.NoColor are drawn in gray.
//
// Rendering never mutates the graph.
package render

import (
	"image/color"

	"github.com/pkg/errors"

	"github.com/katalvlaran/planarcolor/core"
)

// Sentinel errors for rendering.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("render: graph is nil")

	// ErrBadOptions is returned when canvas or palette settings are unusable.
	ErrBadOptions = errors.New("render: invalid options")
)

// Options configures every renderer.
type Options struct {
	Width       int
	Height      int
	Supersample int     // PNG only: draw at N× then downsample
	LineWidth   float64 // edge stroke in output pixels
	Labels      bool    // SVG only: print vertex IDs

	Background color.RGBA
	EdgeColor  color.RGBA
	Uncolored  color.RGBA
	Palette    []color.RGBA

	// Fit replaces the fixed canvas with the scene bounds (SVG only).
	Fit bool
}

// DefaultOptions returns the default 640×640 scene with the four-color palette.
func DefaultOptions() Options {
	return Options{
		Width:       640,
		Height:      640,
		Supersample: 4,
		LineWidth:   1,
		Background:  color.RGBA{0, 0, 0, 255},
		EdgeColor:   color.RGBA{255, 255, 255, 255},
		Uncolored:   color.RGBA{128, 128, 128, 255},
		Palette:     Palette(),
	}
}

// Palette returns the default colors for indices 0..3:
// dark salmon, dark magenta, white, dark green.
func Palette() []color.RGBA {
	return []color.RGBA{
		{233, 150, 122, 255},
		{139, 0, 139, 255},
		{255, 255, 255, 255},
		{0, 100, 0, 255},
	}
}

// Fill returns the fill color for c. Indices beyond the palette wrap around.
func (o Options) Fill(c core.Color) color.RGBA {
	if !c.Valid() || len(o.Palette) == 0 {
		return o.Uncolored
	}
	return o.Palette[int(c)%len(o.Palette)]
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.Wrapf(ErrBadOptions, "canvas %dx%d", o.Width, o.Height)
	}
	if o.Supersample < 1 {
		return errors.Wrapf(ErrBadOptions, "supersample %d", o.Supersample)
	}
	if o.LineWidth <= 0 {
		return errors.Wrapf(ErrBadOptions, "line width %g", o.LineWidth)
	}
	return nil
}
