// Package flags splits flag-bearing link identifiers into tokens and sums link
// attributes over the links of a node that pass an include/exclude filter.
//
// A link identifier such as "BR-3-TR" carries flags: split on the separator "-"
// it yields the tokens [BR 3 TR]. Matching is always by exact token, so "TR"
// never matches "TRX".
//
// Aggregate is the query the solver and reports use to answer questions like
// "how much volume leaves node J1 through infiltration links":
//
//	vol, err := flags.Aggregate(g, "J1", flags.EdgeVolume, flags.Outbound,
//		&flags.Filter{Include: []string{"INF"}})
//
// All functions are pure queries and never mutate the graph.
package flags
