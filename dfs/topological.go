// Package dfs provides the ordering algorithms the network solver depends on.
//
// TopologicalSort computes a linear ordering of nodes such that for every link
// u→v, u appears before v. Upstream catchments therefore always precede the
// junctions and outfalls they drain to.
// If the network contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(N + E) (each node and link visited once)
//   - Memory: O(N)     (recursion stack and state map)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/stormnet/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph    // the network being sorted
	opts  topoOptions    // traversal options (cancellation)
	state map[string]int // visitation state: 0=White,1=Gray,2=Black
	order []string       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all nodes in g.
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns ErrCycleDetected.
// If link lookup fails, returns ErrNeighborFetch.
// Ties between independent nodes are broken by the traversal and must not be
// relied upon. You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	ids := g.NodeIDs()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(ids)),
		order: make([]string, 0, len(ids)),
	}
	// 4. Drive DFS from every unvisited node
	for _, id := range ids {
		if sorter.state[id] == White {
			if err := sorter.visit(id); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id string) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Cycle detection: if already Gray, we found a back-edge
	if t.state[id] == Gray {
		return ErrCycleDetected
	}
	// 3. Already fully processed (Black)? then skip
	if t.state[id] == Black {
		return nil
	}
	// 4. Mark as in-progress (Gray)
	t.state[id] = Gray

	// 5. Explore each outgoing link
	out, err := t.graph.OutEdges(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, e := range out {
		if err = t.visit(e.To); err != nil {
			return err
		}
	}

	// 6. Mark as fully explored (Black) and record in post-order
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
