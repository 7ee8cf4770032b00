package builder

import "github.com/katalvlaran/stormnet/core"

// Series builds a chain of n source nodes idFn(0) → … → idFn(n-1) → OutfallID,
// e.g. a string of BMPs along a single conveyance (n ≥ 1).
// Complexity: O(n) nodes + O(n) links.
func Series(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodSeries, "n", n, minSeriesNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addSource(g, cfg, methodSeries, cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			to := OutfallID
			if i+1 < n {
				to = cfg.idFn(i + 1)
			}
			if err := addLink(g, cfg, methodSeries, cfg.idFn(i), to); err != nil {
				return err
			}
		}

		return nil
	}
}
