package solver_test

import (
	"fmt"

	"github.com/katalvlaran/stormnet/core"
	"github.com/katalvlaran/stormnet/solver"
	"github.com/katalvlaran/stormnet/treatment"
)

// ExampleSolveNetwork routes a catchment through a bioretention cell that
// removes 80% of TSS, with part of the runoff infiltrated.
func ExampleSolveNetwork() {
	g := core.NewGraph()
	s, _ := g.AddNode("S1")
	s.Volume = 10
	s.SetLoad("tss", 1000)
	_, _ = g.AddEdge("S1", "OF1", "BR-1-TR", 8)
	_, _ = g.AddEdge("S1", "GW", "BR-1-INF", 2)

	reg := treatment.NewRegistry()
	_ = reg.Register("BR", "tss", treatment.PercentRemoval{Percent: 80})

	cfg := solver.DefaultConfig()
	cfg.Pollutants = []core.Pollutant{"tss"}
	cfg.Registry = reg

	if _, err := solver.SolveNetwork(g, cfg); err != nil {
		fmt.Println("error:", err)
		return
	}
	n, _ := g.Node("S1")
	l := n.Result.Pollutant("tss")
	fmt.Printf("vol_eff=%.0f vol_reduced=%.0f\n", n.Result.VolumeEff, n.Result.VolumeReduced)
	fmt.Printf("tss load in=%.0f eff=%.0f reduced=%.0f%%\n", l.LoadIn, l.LoadEff, l.PctLoadReduced)
	// Output:
	// vol_eff=8 vol_reduced=2
	// tss load in=1000 eff=160 reduced=84%
}
