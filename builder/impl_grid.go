package builder

import (
	"fmt"

	"github.com/katalvlaran/stormnet/core"
)

// Grid builds an R×C surface of source cells with IDs "r_c". Each cell drains
// to its right and lower neighbors; the last row drains right only, the last
// column down only, and cell (R-1, C-1) drains to OutfallID. Every cell
// therefore reaches the outfall and flow splits where two links leave a cell.
// Complexity: O(R*C) nodes + O(2*R*C) links.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addSource(g, cfg, methodGrid, fmt.Sprintf(gridIDFmt, r, c)); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := addLink(g, cfg, methodGrid, u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addLink(g, cfg, methodGrid, u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return addLink(g, cfg, methodGrid, fmt.Sprintf(gridIDFmt, rows-1, cols-1), OutfallID)
	}
}
