package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stormnet/core"
	"github.com/katalvlaran/stormnet/solver"
)

const poc1 core.Pollutant = "poc1"

// scenario builds the five-node reference network:
//
//	1 (vol 9, poc1 3) --C-1 (9)-->       0 --BR-3-TR (9)--> 3
//	2 (vol 3, poc1 3) --C-2 (3)-->         --DD-5-TR (2)--> 3
//	                                       --OF-4-INF (1)-> 4
func scenario(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range []struct {
		id       string
		vol, poc float64
	}{{"1", 9, 3}, {"2", 3, 3}} {
		node, err := g.AddNode(n.id)
		require.NoError(t, err)
		node.Volume = n.vol
		node.SetLoad(poc1, n.poc)
	}
	for _, e := range []struct {
		from, to, id string
		vol          float64
	}{
		{"1", "0", "C-1", 9},
		{"2", "0", "C-2", 3},
		{"0", "3", "BR-3-TR", 9},
		{"0", "3", "DD-5-TR", 2},
		{"0", "4", "OF-4-INF", 1},
	} {
		_, err := g.AddEdge(e.from, e.to, e.id, e.vol)
		require.NoError(t, err)
	}

	return g
}

// scenarioConfig mirrors the reference run: "vol" column, poc1, TR and INF flags.
func scenarioConfig() solver.Config {
	cfg := solver.DefaultConfig()
	cfg.VolumeColumn = "vol"
	cfg.Pollutants = []core.Pollutant{poc1}

	return cfg
}

// node returns the solved node id.
func node(t testing.TB, g *core.Graph, id string) *core.Node {
	t.Helper()
	n, err := g.Node(id)
	require.NoError(t, err)
	require.NotNil(t, n.Result, "node %s not solved", id)

	return n
}

// link returns the link (from, to, key).
func link(t testing.TB, g *core.Graph, from, to string, key int) *core.Edge {
	t.Helper()
	e, err := g.Edge(from, to, key)
	require.NoError(t, err)

	return e
}
