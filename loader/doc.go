// Package loader builds a core.Graph from a YAML network document or from a
// pair of CSV tables (nodes and links).
//
// Graphs are created with core.WithLoops so that a self-loop in the input
// reaches the solver and is reported as a cycle instead of failing the load.
package loader
