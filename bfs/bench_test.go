package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/stormnet/bfs"
	"github.com/katalvlaran/stormnet/core"
)

// BenchmarkTrace_Upstream traces a binary drainage tree of 1023 nodes from its outlet.
func BenchmarkTrace_Upstream(b *testing.B) {
	g := core.NewGraph()
	for i := 2; i <= 1023; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i/2), fmt.Sprintf("P%d", i), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Trace(g, "N1", bfs.WithDirection(bfs.Upstream))
	}
}
