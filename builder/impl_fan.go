package builder

import "github.com/katalvlaran/stormnet/core"

// Fan builds n source catchments draining to JunctionID, which drains to
// OutfallID (n ≥ 1). Spokes are emitted in index order, the outlet last.
// Complexity: O(n) nodes + O(n) links.
func Fan(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodFan, "n", n, minFanNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := addSource(g, cfg, methodFan, id); err != nil {
				return err
			}
			if err := addLink(g, cfg, methodFan, id, JunctionID); err != nil {
				return err
			}
		}

		return addLink(g, cfg, methodFan, JunctionID, OutfallID)
	}
}
