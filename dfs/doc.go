// Package dfs implements the depth-first algorithms a drainage network solve
// depends on: cycle detection and topological sort over a core.Graph.
//
// What:
//
//   - DetectCycles: enumerates node cycles using vertex coloring (White, Gray,
//     Black) with back-edge recording and canonical signature deduplication.
//   - FindCycle: returns the links (From, To, Key) of the first cycle reached,
//     or nil when the network is acyclic.
//   - TopologicalSort: computes a linear ordering of nodes so that every node
//     follows all of its upstream contributors, returning ErrCycleDetected if
//     cycles exist.
//
// Why:
//   - A node's influent load is the sum of its upstream neighbours' effluent
//     loads, so nodes must be solved in topological order.
//   - A runoff network with a loop has no such order; the cycle must be reported
//     with enough detail (nodes and links) to fix the network.
//
// Complexity:
//
//   - DetectCycles:    Time O(N+E + C·L), Memory O(N+L_max)
//   - FindCycle:       Time O(N+E),       Memory O(N)
//   - TopologicalSort: Time O(N+E),       Memory O(N)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrCycleDetected  cycle discovered while sorting
//   - ErrNeighborFetch  link lookup failed
//   - context.Canceled  sort canceled via WithCancelContext
package dfs
