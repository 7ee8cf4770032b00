package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/stormnet/bfs"
	"github.com/katalvlaran/stormnet/core"
)

// ExampleTrace lists the contributing area of an outfall.
func ExampleTrace() {
	g := core.NewGraph()
	_, _ = g.AddEdge("S1", "J1", "C1", 4)
	_, _ = g.AddEdge("S2", "J1", "C2", 6)
	_, _ = g.AddEdge("J1", "OF1", "P1", 10)

	res, _ := bfs.Trace(g, "OF1", bfs.WithDirection(bfs.Upstream))
	fmt.Println(res.Reached())
	// Output: [J1 S1 S2]
}
