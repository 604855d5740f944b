package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/jbeda/geom"
	"github.com/pkg/errors"

	"github.com/katalvlaran/planarcolor/core"
)

// svgWriter is a minimal SVG serializer that remembers the first write error.
type svgWriter struct {
	w   io.Writer
	err error
}

func (s *svgWriter) printf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *svgWriter) start(viewBox geom.Rect) {
	s.printf(`<?xml version="1.0"?>
<svg version="1.1" xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g" width="%g" height="%g">
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), viewBox.Width(), viewBox.Height())
}

func (s *svgWriter) end() { s.printf("</svg>\n") }

func (s *svgWriter) rect(r geom.Rect, fill color.RGBA) {
	s.printf("<rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" fill=\"%s\"/>\n",
		r.Min.X, r.Min.Y, r.Width(), r.Height(), hex(fill))
}

func (s *svgWriter) line(a, b geom.Coord, stroke color.RGBA, width float64) {
	s.printf("<line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"%s\" stroke-width=\"%g\"/>\n",
		a.X, a.Y, b.X, b.Y, hex(stroke), width)
}

func (s *svgWriter) text(p geom.Coord, label string, fill color.RGBA) {
	s.printf("<text x=\"%g\" y=\"%g\" fill=\"%s\" font-size=\"12\" text-anchor=\"middle\">%s</text>\n",
		p.X, p.Y, hex(fill), label)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// SVG writes the scene as an SVG document.
func SVG(w io.Writer, g *core.Graph, opts Options) error {
	if g == nil {
		return ErrGraphNil
	}
	if err := opts.validate(); err != nil {
		return err
	}

	view := geom.Rect{Max: geom.Coord{X: float64(opts.Width), Y: float64(opts.Height)}}
	if opts.Fit && g.VertexCount() > 0 {
		view = Bounds(g)
	}

	s := &svgWriter{w: w}
	s.start(view)
	s.rect(view, opts.Background)
	for _, e := range g.Edges() {
		u, _ := g.Vertex(e.U)
		v, _ := g.Vertex(e.V)
		s.line(u.Pos, v.Pos, opts.EdgeColor, opts.LineWidth)
	}
	for _, v := range g.Vertices() {
		s.rect(square(v), opts.Fill(v.Color))
		if opts.Labels {
			s.text(v.Pos, fmt.Sprint(v.ID), opts.Background)
		}
	}
	s.end()

	return errors.Wrap(s.err, "render: write svg")
}
