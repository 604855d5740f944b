package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/jbeda/geom"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/planarcolor/core"
)

// raster draws one supersampled frame.
type raster struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	scale float64
	line  float64 // stroke width in canvas pixels
}

// PNG encodes the scene as a PNG image of opts.Width×opts.Height.
//
// The frame is drawn at Supersample× size and downsampled with Catmull-Rom
// for anti-aliased strokes.
func PNG(w io.Writer, g *core.Graph, opts Options) error {
	if g == nil {
		return ErrGraphNil
	}
	if err := opts.validate(); err != nil {
		return err
	}

	img := Image(g, opts)
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(err, "render: encode png")
	}
	return nil
}

// Image draws the scene into a new RGBA image. opts must be valid.
func Image(g *core.Graph, opts Options) *image.RGBA {
	s := opts.Supersample
	large := image.NewRGBA(image.Rect(0, 0, opts.Width*s, opts.Height*s))
	r := &raster{
		img:   large,
		z:     vector.NewRasterizer(large.Bounds().Dx(), large.Bounds().Dy()),
		scale: float64(s),
		line:  opts.LineWidth * float64(s),
	}

	draw.Draw(large, large.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	for _, e := range g.Edges() {
		u, _ := g.Vertex(e.U)
		v, _ := g.Vertex(e.V)
		r.stroke(u.Pos, v.Pos, opts.EdgeColor)
	}
	for _, v := range g.Vertices() {
		r.fill(square(v), opts.Fill(v.Color))
	}

	if s == 1 {
		return large
	}
	out := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(out, out.Bounds(), large, large.Bounds(), draw.Over, nil)
	return out
}

// stroke draws a, b (canvas coordinates) as a filled quad of width r.line.
func (r *raster) stroke(a, b geom.Coord, c color.RGBA) {
	a, b = a.Times(r.scale), b.Times(r.scale)
	half := r.line / 2

	// keep the whole quad inside the frame
	bounds := r.img.Bounds()
	inner := geom.Rect{
		Min: geom.Coord{X: half, Y: half},
		Max: geom.Coord{X: float64(bounds.Dx()) - half, Y: float64(bounds.Dy()) - half},
	}
	a, b, ok := clipSegment(a, b, inner)
	if !ok {
		return
	}
	d := b.Minus(a)
	length := math.Hypot(d.X, d.Y)
	if length == 0 {
		return
	}
	n := geom.Coord{X: -d.Y, Y: d.X}.Times(half / length)

	r.z.Reset(bounds.Dx(), bounds.Dy())
	r.moveTo(a.Plus(n))
	r.lineTo(b.Plus(n))
	r.lineTo(b.Minus(n))
	r.lineTo(a.Minus(n))
	r.z.ClosePath()
	r.z.Draw(r.img, bounds, image.NewUniform(c), image.Point{})
}

// fill paints an axis-aligned rectangle given in canvas coordinates.
func (r *raster) fill(rect geom.Rect, c color.RGBA) {
	px := image.Rect(
		int(math.Floor(rect.Min.X*r.scale)), int(math.Floor(rect.Min.Y*r.scale)),
		int(math.Ceil(rect.Max.X*r.scale)), int(math.Ceil(rect.Max.Y*r.scale)),
	).Intersect(r.img.Bounds())
	if px.Empty() {
		return
	}
	draw.Draw(r.img, px, image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *raster) moveTo(p geom.Coord) { r.z.MoveTo(float32(p.X), float32(p.Y)) }
func (r *raster) lineTo(p geom.Coord) { r.z.LineTo(float32(p.X), float32(p.Y)) }
