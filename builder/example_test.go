package builder_test

import (
	"fmt"

	"github.com/katalvlaran/planarcolor/builder"
)

// ExampleBuildPlanar builds a five-vertex ring where every pair is proposed:
// the first-claimed fan from vertex 0 blocks the interleaved chords.
func ExampleBuildPlanar() {
	g, st, err := builder.BuildPlanar(
		builder.WithVertexCount(5),
		builder.WithEdgeProbability(1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Edges())
	fmt.Printf("proposed=%d accepted=%d rejected=%d\n", st.Proposed, st.Accepted, st.Rejected)
	// Output:
	// [{0 1} {0 2} {0 3} {0 4} {1 2} {2 3} {3 4}]
	// proposed=10 accepted=7 rejected=3
}

// ExampleCycle builds the square used in coloring examples.
func ExampleCycle() {
	g, err := builder.BuildGraph(nil, builder.Cycle(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.AdjacencyList())
	// Output:
	// map[0:[1 3] 1:[0 2] 2:[1 3] 3:[2 0]]
}
