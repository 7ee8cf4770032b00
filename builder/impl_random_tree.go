package builder

import "github.com/katalvlaran/stormnet/core"

// RandomTree builds n source nodes where node 0 drains to OutfallID and each
// node i > 0 drains to a uniformly drawn node in [0, i). Requires an RNG.
// Complexity: O(n) nodes + O(n) links.
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomTree, "n", n, minRandomTreeNodes); err != nil {
			return err
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandomTree, "%w", ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := addSource(g, cfg, methodRandomTree, id); err != nil {
				return err
			}
			to := OutfallID
			if i > 0 {
				to = cfg.idFn(cfg.rng.Intn(i))
			}
			if err := addLink(g, cfg, methodRandomTree, id, to); err != nil {
				return err
			}
		}

		return nil
	}
}
