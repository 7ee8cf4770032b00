// Package builder provides internal helpers used by Constructor implementations.
package builder

import (
	"fmt"

	"github.com/katalvlaran/stormnet/core"
)

// addSource adds node id as a runoff source configured by cfg.
func addSource(g *core.Graph, cfg builderConfig, method, id string) error {
	n, err := g.AddNode(id)
	if err != nil {
		return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
	}
	cfg.source(n)

	return nil
}

// addLink connects from → to with a generated link ID. Volume is assigned
// later by route.
func addLink(g *core.Graph, cfg builderConfig, method, from, to string) error {
	id := cfg.linkID(g)
	if _, err := g.AddEdge(from, to, id, 0); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, %s): %w", method, from, to, id, err)
	}

	return nil
}
