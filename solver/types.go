package solver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/stormnet/core"
	"github.com/katalvlaran/stormnet/dfs"
)

var (
	// ErrInvalidConfig indicates a Config that cannot drive a solve.
	ErrInvalidConfig = errors.New("solver: invalid config")

	// ErrCycle indicates the network contains a cycle and cannot be ordered.
	ErrCycle = errors.New("solver: network contains cycles")
)

// CycleError lists the cycles found in a network.
type CycleError struct {
	// NodeCycles are closed node sequences, e.g. [A B C A].
	NodeCycles [][]string

	// EdgeCycle are the links of one cycle in traversal order.
	EdgeCycle []*core.Edge
}

// Error implements error.
func (e *CycleError) Error() string {
	nodes := make([]string, len(e.NodeCycles))
	for i, c := range e.NodeCycles {
		nodes[i] = "[" + strings.Join(c, " ") + "]"
	}

	return fmt.Sprintf("%v: node cycles %s; edge cycle %s",
		ErrCycle, strings.Join(nodes, " "), dfs.EdgeSig(e.EdgeCycle))
}

// Unwrap returns ErrCycle.
func (e *CycleError) Unwrap() error { return ErrCycle }

// Warning records a recoverable condition met while solving: a flag known to
// the registry that has no performance function for a pollutant.
type Warning struct {
	Node      string
	Edge      string // link ID
	To        string
	Key       int
	Flag      string
	Pollutant core.Pollutant
}

// String renders the warning for logs and reports.
func (w Warning) String() string {
	return fmt.Sprintf("no performance function for flag %q and pollutant %q on link %s (%s, %s, %d); no reduction applied",
		w.Flag, w.Pollutant, w.Edge, w.Node, w.To, w.Key)
}

// Report summarizes one network solve.
type Report struct {
	// Order is the topological order the nodes were solved in.
	Order []string

	// Warnings are the recoverable conditions met, in solve order.
	Warnings []Warning

	// Nodes and Edges count the solved nodes and the links of the network.
	Nodes int
	Edges int

	// Elapsed is the wall time of the solve.
	Elapsed time.Duration
}
