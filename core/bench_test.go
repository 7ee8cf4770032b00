// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/stormnet/core"
)

// BenchmarkAddEdge measures appending links into a single outfall.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("S%d", i), "OF1", "C", 1)
	}
}

// BenchmarkOutEdges measures adjacency reads on a wide junction.
func BenchmarkOutEdges(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge("J1", fmt.Sprintf("OF%d", i), "P", 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.OutEdges("J1")
	}
}
