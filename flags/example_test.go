package flags_test

import (
	"fmt"

	"github.com/katalvlaran/stormnet/core"
	"github.com/katalvlaran/stormnet/flags"
)

// ExampleAggregate sums the volume leaving a junction through treated links.
func ExampleAggregate() {
	g := core.NewGraph()
	_, _ = g.AddEdge("J1", "OF1", "BR-3-TR", 10)
	_, _ = g.AddEdge("J1", "OF1", "DD-5-TR", 6)
	_, _ = g.AddEdge("J1", "INF", "OF-4-INF", 3)

	treated, _ := flags.Aggregate(g, "J1", flags.EdgeVolume, flags.Outbound,
		&flags.Filter{Include: []string{"TR"}})
	fmt.Println(treated)
	// Output:
	// 16
}
