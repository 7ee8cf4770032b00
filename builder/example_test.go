package builder_test

import (
	"fmt"

	"github.com/katalvlaran/stormnet/builder"
)

// ExampleBuildNetwork generates three catchments in series.
func ExampleBuildNetwork() {
	g, _ := builder.BuildNetwork(nil,
		[]builder.BuilderOption{builder.WithSymbNumb("S")},
		builder.Series(3))
	for _, e := range g.Edges() {
		fmt.Println(e.From, "->", e.To, e.ID, e.Volume)
	}
	// Output:
	// S0 -> S1 C-0 1
	// S1 -> S2 C-1 2
	// S2 -> OF C-2 3
}
