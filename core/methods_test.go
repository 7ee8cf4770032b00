// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in deterministic behaviors for node/link lifecycle and adjacency queries.
//   - Anchor the arena identity rules (Index, parallel Key).
//   - Verify that Clone and ResetResults separate raw from computed attributes.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stormnet/core"
)

// TestGraph_AddNode verifies AddNode/Node/HasNode lifecycle rules.
func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()

	// Empty IDs are rejected everywhere.
	_, err := g.AddNode("")
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
	_, err = g.Node("")
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
	assert.False(t, g.HasNode(""))

	// Missing nodes report ErrNodeNotFound.
	_, err = g.Node("S1")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	// AddNode is idempotent and returns the live entry.
	n, err := g.AddNode("S1")
	require.NoError(t, err)
	n.Volume = 4.5
	again, err := g.AddNode("S1")
	require.NoError(t, err)
	assert.Same(t, n, again)
	assert.Equal(t, 4.5, again.Volume)
	assert.Equal(t, 1, g.NodeCount())
	assert.True(t, g.HasNode("S1"))
}

// TestGraph_NodesSorted anchors the deterministic node order.
func TestGraph_NodesSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"J2", "OF1", "J1", "S1"} {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"J1", "J2", "OF1", "S1"}, g.NodeIDs())

	ids := make([]string, 0, 4)
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, g.NodeIDs(), ids)
}

// TestGraph_AddEdge verifies arena identity and parallel keys.
func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B", "x", 0)
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
	_, err = g.AddEdge("A", "A", "loop", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	e0, err := g.AddEdge("0", "3", "BR-3-TR", 9)
	require.NoError(t, err)
	e1, err := g.AddEdge("0", "3", "DD-5-TR", 2, core.WithLabel("xtype", "weir"))
	require.NoError(t, err)
	e2, err := g.AddEdge("0", "4", "OF-4-INF", 1)
	require.NoError(t, err)

	// Endpoints are created on demand.
	assert.True(t, g.HasNode("0"))
	assert.True(t, g.HasNode("3"))
	assert.True(t, g.HasNode("4"))

	assert.Equal(t, []int{0, 1, 2}, []int{e0.Index, e1.Index, e2.Index})
	assert.Equal(t, 0, e0.Key)
	assert.Equal(t, 1, e1.Key)
	assert.Equal(t, 0, e2.Key)
	assert.Equal(t, 3, g.EdgeCount())

	got, err := g.Edge("0", "3", 1)
	require.NoError(t, err)
	assert.Same(t, e1, got)
	_, err = g.Edge("0", "3", 2)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	at, err := g.EdgeAt(2)
	require.NoError(t, err)
	assert.Same(t, e2, at)
	_, err = g.EdgeAt(3)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	assert.Equal(t, "DD-5-TR", e1.Text(core.IDLabel))
	assert.Equal(t, "DD-5-TR", e1.Text(""))
	assert.Equal(t, "weir", e1.Text("xtype"))
	assert.Equal(t, "", e0.Text("xtype"))
}

// TestGraph_Loops verifies that WithLoops admits self-loops.
func TestGraph_Loops(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	assert.True(t, g.Looped())
	e, err := g.AddEdge("1", "1", "L", 0)
	require.NoError(t, err)
	assert.Equal(t, "1", e.From)
	assert.Equal(t, "1", e.To)
}

// TestGraph_Adjacency verifies in/out links and neighbor sets.
func TestGraph_Adjacency(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("1", "0", "C-1", 9)
	_, _ = g.AddEdge("2", "0", "C-2", 3)
	_, _ = g.AddEdge("0", "3", "BR-3-TR", 9)
	_, _ = g.AddEdge("0", "3", "DD-5-TR", 2)
	_, _ = g.AddEdge("0", "4", "OF-4-INF", 1)

	out, err := g.OutEdges("0")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "BR-3-TR", out[0].ID)
	assert.Equal(t, "OF-4-INF", out[2].ID)

	in, err := g.InEdges("0")
	require.NoError(t, err)
	require.Len(t, in, 2)
	assert.Equal(t, "C-1", in[0].ID)

	succ, err := g.Successors("0")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4"}, succ)

	pred, err := g.Predecessors("0")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, pred)

	term, err := g.Terminal("3")
	require.NoError(t, err)
	assert.True(t, term)
	term, err = g.Terminal("0")
	require.NoError(t, err)
	assert.False(t, term)

	_, err = g.OutEdges("missing")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.InEdges("")
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
	_, err = g.Terminal("missing")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestGraph_CloneAndReset verifies that Clone copies raw state only and that
// ResetResults drops computed records without touching raw attributes.
func TestGraph_CloneAndReset(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	n, _ := g.AddNode("S1")
	n.Volume = 9
	n.SetLoad("tss", 3)
	ck := 8.5
	n.CheckVolume = &ck
	e, _ := g.AddEdge("S1", "OF1", "C-1", 9, core.WithLabel("xtype", "dt"))

	n.Result = &core.NodeResult{VolumeIn: 9}
	e.Result = &core.EdgeResult{}

	c := g.Clone()
	assert.True(t, c.Looped())
	cn, err := c.Node("S1")
	require.NoError(t, err)
	assert.Nil(t, cn.Result)
	assert.Equal(t, 9.0, cn.Volume)
	assert.Equal(t, 3.0, cn.Load("tss"))
	require.NotNil(t, cn.CheckVolume)
	assert.Equal(t, 8.5, *cn.CheckVolume)

	// Deep copy: mutating the clone leaves the source intact.
	cn.SetLoad("tss", 100)
	*cn.CheckVolume = 1
	assert.Equal(t, 3.0, n.Load("tss"))
	assert.Equal(t, 8.5, *n.CheckVolume)

	ce, err := c.Edge("S1", "OF1", 0)
	require.NoError(t, err)
	assert.NotSame(t, e, ce)
	assert.Nil(t, ce.Result)
	assert.Equal(t, "dt", ce.Text("xtype"))

	// The parallel counter is carried over.
	next, err := c.AddEdge("S1", "OF1", "C-1b", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Key)

	g.ResetResults()
	assert.Nil(t, n.Result)
	assert.Nil(t, e.Result)
	assert.Equal(t, 9.0, n.Volume)
}

// TestNode_LoadDefaults verifies nil-safe raw load reads.
func TestNode_LoadDefaults(t *testing.T) {
	var nilNode *core.Node
	assert.Equal(t, 0.0, nilNode.Load("tss"))

	n := &core.Node{ID: "J1"}
	assert.Equal(t, 0.0, n.Load("tss"))

	var r *core.NodeResult
	assert.Equal(t, core.NodeLoad{}, r.Pollutant("tss"))

	var e *core.Edge
	assert.Nil(t, e.Load("tss"))

	res := &core.EdgeResult{}
	res.Tag("BR", "tss")
	res.Tag("BR", "tp")
	res.Tag(core.NoTreatmentFunction, "tn")
	assert.Equal(t, []core.Pollutant{"tss", "tp"}, res.Treatment["BR"])
	assert.Equal(t, []core.Pollutant{"tn"}, res.Treatment[core.NoTreatmentFunction])
}
