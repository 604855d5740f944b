package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/katalvlaran/planarcolor/core"
)

// Text writes one tab-aligned row per vertex in insertion order:
//
//	ID  X  Y  SIZE  COLOR  NEIGHBORS
//
// followed by a summary line. Uncolored vertices show "-".
func Text(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tX\tY\tSIZE\tCOLOR\tNEIGHBORS")
	for _, v := range g.Vertices() {
		ids, _ := g.NeighborIDs(v.ID)
		fmt.Fprintf(tw, "%d\t%g\t%g\t%d\t%s\t%v\n", v.ID, v.Pos.X, v.Pos.Y, v.Size, v.Color, ids)
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "render: write text")
	}

	st := g.Stats()
	_, err := fmt.Fprintf(w, "vertices=%d edges=%d max-degree=%d isolated=%d colored=%d\n",
		st.VertexCount, st.EdgeCount, st.MaxDegree, st.IsolatedCount, st.ColoredCount)
	return errors.Wrap(err, "render: write text")
}
