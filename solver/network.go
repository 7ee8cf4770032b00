package solver

import (
	"fmt"
	"time"

	"github.com/katalvlaran/stormnet/core"
	"github.com/katalvlaran/stormnet/dfs"
)

// ValidateAcyclic returns a *CycleError listing the node cycles and one link
// cycle of g, or nil when g is acyclic.
func ValidateAcyclic(g *core.Graph) error {
	has, cycles, err := dfs.DetectCycles(g)
	if err != nil {
		return fmt.Errorf("solver: validate: %w", err)
	}
	if !has {
		return nil
	}
	edges, err := dfs.FindCycle(g)
	if err != nil {
		return fmt.Errorf("solver: validate: %w", err)
	}

	return &CycleError{NodeCycles: cycles, EdgeCycle: edges}
}

// SolveNetwork solves every node of g in topological order.
//
// Steps:
//  1. Validate cfg before touching the graph.
//  2. Reject cyclic networks with a *CycleError.
//  3. Order nodes topologically.
//  4. Solve each node; the first error aborts, leaving earlier results in place.
//
// Solving an already solved graph recomputes identical results.
func SolveNetwork(g *core.Graph, cfg Config, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, fmt.Errorf("solver: %w", dfs.ErrGraphNil)
	}
	// 1) Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	start := time.Now()

	// 2) Cycles
	if err := ValidateAcyclic(g); err != nil {
		return nil, err
	}

	// 3) Order
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, fmt.Errorf("solver: order: %w", err)
	}

	// 4) Solve
	s := newNodeSolver(g, cfg, o)
	for _, id := range order {
		if err = s.solve(id); err != nil {
			return nil, err
		}
	}

	elapsed := time.Since(start)
	o.metrics.observe(elapsed)
	o.logger.Info("network solved", "nodes", len(order), "edges", g.EdgeCount(),
		"warnings", len(s.warnings), "elapsed", elapsed)

	return &Report{
		Order:    order,
		Warnings: s.warnings,
		Nodes:    len(order),
		Edges:    g.EdgeCount(),
		Elapsed:  elapsed,
	}, nil
}
