// Command planarcolor generates a random crossing-free graph, lays it out
// on a circle, colors it greedily and writes the scene as PNG, SVG or text.
//
//	planarcolor -seed 42 -o graph.png
//	planarcolor -format text -min 5 -max 5 -p 1
package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/planarcolor/builder"
	"github.com/katalvlaran/planarcolor/coloring"
	"github.com/katalvlaran/planarcolor/core"
	"github.com/katalvlaran/planarcolor/layout"
	"github.com/katalvlaran/planarcolor/render"
)

type params struct {
	seed      int64
	min, max  int
	prob      float64
	colors    int
	placement string
	all       bool
	width     int
	height    int
	margin    int
	format    string
	out       string
}

func newFlagSet(p *params) *flag.FlagSet {
	fset := flag.NewFlagSet("planarcolor", flag.ContinueOnError)
	fset.Int64Var(&p.seed, "seed", 0, "random seed (0 picks one from the clock)")
	fset.IntVar(&p.min, "min", builder.DefaultMinVertices, "minimum vertex count")
	fset.IntVar(&p.max, "max", builder.DefaultMaxVertices, "maximum vertex count")
	fset.Float64Var(&p.prob, "p", builder.DefaultEdgeProbability, "probability a vertex pair is proposed")
	fset.IntVar(&p.colors, "colors", coloring.DefaultNumColors, "palette size")
	fset.StringVar(&p.placement, "placement", builder.PlacementRing.String(), "provisional placement: ring|origin")
	fset.BoolVar(&p.all, "all", false, "color every component, not only the start vertex's")
	fset.IntVar(&p.width, "width", layout.DefaultCanvasWidth, "canvas width")
	fset.IntVar(&p.height, "height", layout.DefaultCanvasHeight, "canvas height")
	fset.IntVar(&p.margin, "margin", layout.DefaultVertexRadius, "vertex size unit and circle margin")
	fset.StringVar(&p.format, "format", "png", "output format: png|svg|text")
	fset.StringVar(&p.out, "o", "-", "output path (- for stdout)")
	return fset
}

func main() {
	p := &params{}
	fset := newFlagSet(p)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	if err := fset.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	defer klog.Flush()

	if p.seed == 0 {
		p.seed = time.Now().UnixNano()
		klog.Infof("using seed %d", p.seed)
	}

	out, closeOut, err := openOutput(p.out)
	if err != nil {
		klog.Exitf("planarcolor: %v", err)
	}
	err = run(p, out)
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		klog.Exitf("planarcolor: %v", err)
	}
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open output")
	}
	return f, f.Close, nil
}

// run executes build → layout → color → render and writes the scene to w.
// Coloring conflicts and uncolored vertices are logged, not returned.
func run(p *params, w io.Writer) error {
	switch p.format {
	case "png", "svg", "text":
	default:
		return errors.Errorf("unknown format %q", p.format)
	}
	placement, ok := builder.ParsePlacement(p.placement)
	if !ok {
		return errors.Errorf("unknown placement %q", p.placement)
	}
	if p.min < 1 || p.max < p.min {
		return errors.Errorf("invalid vertex range [%d,%d]", p.min, p.max)
	}
	if p.prob < builder.MinProbability || p.prob > builder.MaxProbability {
		return errors.Errorf("edge probability %g outside [0,1]", p.prob)
	}

	lopts := []layout.Option{
		layout.WithVertexRadius(p.margin),
		layout.WithCanvas(p.width, p.height),
	}
	lcfg, err := layout.NewConfig(lopts...)
	if err != nil {
		return err
	}
	klog.V(2).Infof("layout %s", lcfg.Describe())

	g, st, err := builder.BuildPlanar(
		builder.WithSeed(p.seed),
		builder.WithVertexRange(p.min, p.max),
		builder.WithEdgeProbability(p.prob),
		builder.WithPlacement(placement),
		builder.WithCanvas(lcfg.Center, lcfg.Radius),
		builder.WithOnReject(func(proposed, blocking core.Edge) {
			klog.V(2).Infof("rejected %d-%d: crosses %d-%d", proposed.U, proposed.V, blocking.U, blocking.V)
		}),
	)
	if err != nil {
		return errors.Wrap(err, "build")
	}
	klog.Infof("built %d vertices, %d edges (proposed=%d rejected=%d)",
		g.VertexCount(), g.EdgeCount(), st.Proposed, st.Rejected)

	if err = layout.Circular(g, lopts...); err != nil {
		return errors.Wrap(err, "layout")
	}

	copts := []coloring.Option{coloring.WithNumColors(p.colors)}
	if p.all {
		copts = append(copts, coloring.WithAllComponents())
	}
	res, err := coloring.Greedy(g, 0, copts...)
	if err != nil {
		return errors.Wrap(err, "color")
	}
	if len(res.Exhausted) > 0 {
		klog.Warningf("%d vertices ran out of colors: %v", len(res.Exhausted), res.Exhausted)
	}
	if n := len(res.Uncolored) - len(res.Exhausted); n > 0 {
		klog.Warningf("%d vertices unreachable from 0 left uncolored", n)
	}
	for _, e := range res.Conflicts {
		klog.Warningf("conflict on edge %d-%d", e.U, e.V)
	}

	ropts := render.DefaultOptions()
	ropts.Width, ropts.Height = p.width, p.height
	switch p.format {
	case "png":
		err = render.PNG(w, g, ropts)
	case "svg":
		err = render.SVG(w, g, ropts)
	case "text":
		err = render.Text(w, g)
	}
	return err
}
