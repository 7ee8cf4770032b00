package bfs_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stormnet/bfs"
	"github.com/katalvlaran/stormnet/core"
)

// network builds two subbasins draining through a junction to an outfall,
// with an infiltration link from the junction to INF.
//
//	S1 ─┐
//	    ├─> J1 ─> OF1
//	S2 ─┘    └──> INF
func network(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, l := range [][3]string{
		{"S1", "J1", "C1"},
		{"S2", "J1", "C2"},
		{"J1", "OF1", "P1"},
		{"J1", "INF", "J1-INF"},
	} {
		_, err := g.AddEdge(l[0], l[1], l[2], 1)
		require.NoError(t, err)
	}

	return g
}

func TestTrace_NilGraph(t *testing.T) {
	res, err := bfs.Trace(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestTrace_StartNotFound(t *testing.T) {
	_, err := bfs.Trace(network(t), "X")
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)
}

func TestTrace_Downstream(t *testing.T) {
	res, err := bfs.Trace(network(t), "S1")
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "J1", "OF1", "INF"}, res.Order)
	assert.Equal(t, 2, res.Depth["OF1"])
	assert.Equal(t, "J1", res.Parent["INF"])
	assert.Equal(t, "J1-INF", res.Via["INF"].ID)
	assert.NotContains(t, res.Depth, "S2")

	path, err := res.PathTo("OF1")
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "J1", "OF1"}, path)

	_, err = res.PathTo("S2")
	assert.Error(t, err)
}

func TestTrace_Upstream(t *testing.T) {
	res, err := bfs.Trace(network(t), "OF1", bfs.WithDirection(bfs.Upstream))
	require.NoError(t, err)
	assert.Equal(t, []string{"OF1", "J1", "S1", "S2"}, res.Order)
	assert.ElementsMatch(t, []string{"J1", "S1", "S2"}, res.Reached())
	assert.Equal(t, "C2", res.Via["S2"].ID)

	// Upstream paths run from the outfall back to the source.
	path, err := res.PathTo("S2")
	require.NoError(t, err)
	assert.Equal(t, []string{"OF1", "J1", "S2"}, path)
}

func TestTrace_FilterLink(t *testing.T) {
	skipINF := func(e *core.Edge) bool { return !strings.Contains(e.ID, "INF") }
	res, err := bfs.Trace(network(t), "S1", bfs.WithFilterLink(skipINF))
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "J1", "OF1"}, res.Order)
}

func TestTrace_MaxDepth(t *testing.T) {
	res, err := bfs.Trace(network(t), "S1", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "J1"}, res.Order)

	res, err = bfs.Trace(network(t), "S1", bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 4)
}

func TestTrace_InvalidOptions(t *testing.T) {
	_, err := bfs.Trace(network(t), "S1", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Trace(network(t), "S1", bfs.WithDirection(bfs.Direction(7)))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestTrace_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	var seen []string
	_, err := bfs.Trace(network(t), "S1", bfs.WithOnVisit(func(id string, depth int) error {
		seen = append(seen, id)
		if id == "J1" {
			return stop
		}

		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"S1", "J1"}, seen)
}

func TestTrace_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Trace(network(t), "S1", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestTrace_Cycle ensures a looped network terminates.
func TestTrace_Cycle(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "B", "P1", 0)
	_, _ = g.AddEdge("B", "A", "P2", 0)
	_, _ = g.AddEdge("B", "B", "P3", 0)

	res, err := bfs.Trace(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}
