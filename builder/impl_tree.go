package builder

import "github.com/katalvlaran/stormnet/core"

// Tree builds a complete drainage tree of the given depth and branching
// factor. Node 0 is the root and drains to OutfallID; node i > 0 drains to
// node (i-1)/branching. Leaves are runoff sources, inner nodes are junctions
// with no runoff of their own.
// Complexity: O(b^d) nodes and links.
func Tree(depth, branching int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodTree, "depth", depth, minTreeDepth); err != nil {
			return err
		}
		if err := validateMin(methodTree, "branching", branching, minTreeBranching); err != nil {
			return err
		}

		// total nodes and first leaf index of a complete b-ary tree
		total, level := 1, 1
		for d := 0; d < depth; d++ {
			level *= branching
			total += level
		}
		firstLeaf := total - level

		for i := 0; i < total; i++ {
			id := cfg.idFn(i)
			if i >= firstLeaf {
				if err := addSource(g, cfg, methodTree, id); err != nil {
					return err
				}
			}
			to := OutfallID
			if i > 0 {
				to = cfg.idFn((i - 1) / branching)
			}
			if err := addLink(g, cfg, methodTree, id, to); err != nil {
				return err
			}
		}

		return nil
	}
}
