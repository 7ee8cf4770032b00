// Package dfs defines the visitation states, sentinel errors and options shared by
// the depth-first algorithms over a drainage network: topological ordering and
// cycle detection.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the recursion stack (visiting).
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve outgoing links from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
