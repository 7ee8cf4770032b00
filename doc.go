// Package stormnet computes stormwater runoff volume and pollutant load
// reductions over a drainage network.
//
// What is stormnet?
//
//	A directed multigraph of catchments, junctions and outfalls joined by
//	links (pipes, weirs, BMP devices) whose identifiers carry flag tokens:
//		• "TR" marks a treatment link: its other tokens ("BR", "DD", ...) select
//		  performance functions from a registry
//		• "INF" marks a volume-reduction link: water and load leave the system
//	A solve walks the network in topological order and, at every node, balances
//	water and pollutant mass and writes the results onto the node and its links.
//
// Under the hood the module is organized as:
//
//	core/       : Graph, Node, Edge and the typed result records
//	dfs/        : topological sort and cycle detection
//	flags/      : flag tokenizer and filtered link aggregation
//	treatment/  : BMP performance functions and registry
//	solver/     : node and network solvers, metrics, cached Network
//	config/     : YAML settings and BMP tables
//	loader/     : YAML and CSV network input
//	export/     : tabular results, CSV and SQLite output
//	bfs/        : upstream and downstream traces
//	builder/    : synthetic drainage networks
//	cmd/stormnet : batch command line tool
//
// Quick example:
//
//	g, _ := loader.LoadYAML("net.yaml")
//	settings, _ := config.Load("settings.yaml")
//	cfg, _ := settings.SolverConfig()
//	report, err := solver.SolveNetwork(g, cfg)
package stormnet
