// Package builder: public entry point and runoff routing.
package builder

import (
	"fmt"

	"github.com/katalvlaran/stormnet/core"
	"github.com/katalvlaran/stormnet/dfs"
)

// Constructor adds nodes and links to g using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Drain every node they add to OutfallID, directly or indirectly.
//   - Leave link volumes at 0; BuildNetwork routes them afterwards.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildNetwork creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, applies all constructors in order, and
// routes runoff through the result.
// Any constructor error is wrapped with the context "BuildNetwork: %w" and
// returned immediately.
func BuildNetwork(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuild, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}
	if err := route(g, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	return g, nil
}

// route assigns link volumes in topological order. Each node's runoff plus
// inflow leaves on its links: the infiltration fraction to InfiltrationID,
// the rest split evenly across its existing out links.
func route(g *core.Graph, cfg builderConfig) error {
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return fmt.Errorf("route: %v: %w", err, ErrConstructFailed)
	}
	for _, id := range order {
		out, err := g.OutEdges(id)
		if err != nil {
			return fmt.Errorf("route: %w", err)
		}
		if len(out) == 0 {
			continue
		}
		in, err := g.InEdges(id)
		if err != nil {
			return fmt.Errorf("route: %w", err)
		}
		n, err := g.Node(id)
		if err != nil {
			return fmt.Errorf("route: %w", err)
		}

		q := n.Volume
		for _, e := range in {
			q += e.Volume
		}
		if cfg.infiltration > 0 {
			lost := q * cfg.infiltration
			if _, err = g.AddEdge(id, InfiltrationID, fmt.Sprintf(infiltrationIDFmt, id), lost); err != nil {
				return fmt.Errorf("route: %w", err)
			}
			q -= lost
		}
		share := q / float64(len(out))
		for _, e := range out {
			e.Volume = share
		}
	}

	return nil
}
