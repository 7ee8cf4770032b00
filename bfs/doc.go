// Package bfs traces a drainage network breadth-first from a node, either
// downstream along link direction or upstream against it.
//
// What
//
//   - Downstream trace: every node the runoff of a start node can reach.
//   - Upstream trace: the contributing drainage area of a node, i.e. every node
//     whose runoff reaches it.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → number of links from start
//   - Parent: map from node → its predecessor in the trace tree
//   - Via: map from node → the link it was reached through
//   - Hooks: OnVisit (may abort with an error).
//   - Link filtering via WithFilterLink (e.g. skip infiltration links).
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Links are followed in insertion order, so the visit sequence is
//	reproducible for a given network.
//
// Complexity (N = |Nodes|, E = |Links|)
//
//   - Time:   O(N + E)
//   - Memory: O(N)
//
// Usage
//
//	// Contributing area of outfall "OF1", ignoring infiltration links:
//	res, err := bfs.Trace(g, "OF1",
//	    bfs.WithDirection(bfs.Upstream),
//	    bfs.WithFilterLink(func(e *core.Edge) bool { return !strings.Contains(e.ID, "INF") }),
//	)
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartNodeNotFound   if the start node does not exist.
//   - ErrOptionViolation     if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors           if link lookup fails for any node.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
