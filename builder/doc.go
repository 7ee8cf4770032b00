// Package builder generates synthetic drainage networks for tests, benchmarks
// and what-if runs.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildNetwork:      creates a core.Graph, applies constructors in order,
//     then routes runoff so every link carries the flow it conveys.
//     – Constructor:       a function that adds nodes and links to the graph.
//   - Topologies:
//     – Series:            a chain of n nodes draining to the outfall.
//     – Fan:               n catchments draining to one junction.
//     – Tree:              a complete tree of catchments (leaves) and junctions.
//     – Grid:              an R×C surface where each cell drains right and down.
//     – RandomTree:        n nodes, each draining to a random earlier node.
//   - Node ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolNumberIDFn:  prefixed decimals ("S0","S1",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//   - Runoff distributions (VolumeFn implementations):
//     – DefaultVolumeFn:   constant volume DefaultRunoff.
//     – ConstantVolumeFn:  fixed user-provided value.
//     – UniformVolumeFn:   uniform ∼U[min,max].
//   - Link flags:
//     – WithBMP:           marks links as treated by a BMP with probability p,
//     giving IDs such as "BR-12-TR".
//     – WithInfiltration:  sends a fraction of every node outflow to INF.
//
// Guarantees:
//
//   - Generated networks are acyclic and drain to OutfallID (and InfiltrationID
//     when infiltration is enabled).
//   - Volumes are conserved: each node's runoff plus inflow leaves on its links.
//   - Same inputs, options, seed and constructor order give identical networks.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors;
//     constructors themselves return sentinel errors.
package builder
