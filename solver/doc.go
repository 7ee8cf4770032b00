// Package solver computes the runoff volume and pollutant load balance of a
// drainage network.
//
// What:
//
//   - SolveNode performs the water and mass balance of one node and writes
//     the results onto the node and its outgoing links.
//   - SolveNetwork validates the network (acyclic, valid Config), orders the
//     nodes topologically and solves each node in turn, so that every node sees
//     the effluent loads of all of its upstream contributors.
//   - Network bundles a graph and its Config and caches one solve until Reset.
//
// Treatment:
//
// Link identifiers carry flag tokens ("BR-3-TR"). A link bearing a
// volume-reduction flag (default "INF") removes all load it conveys. A link
// bearing a treatment flag (default "TR") has its effluent concentration set
// by the performance functions registered for its other tokens in a
// treatment.Registry; when several tokens match, the last one wins. A token
// known to the registry but lacking a function for a pollutant passes the
// influent through, is tagged core.NoTreatmentFunction on the link and is
// reported as a Warning.
//
// Conventions:
//
//   - Percentages are 0..100 and use safe division: a zero denominator yields 0.
//   - Outfalls (nodes with no outgoing links) receive no treatment credit.
//   - Raw attributes are never written; each solve replaces Node.Result and
//     the Result of every outgoing link, so repeated solves are idempotent.
//
// Errors:
//
//   - ErrInvalidConfig  malformed Config (empty separator, duplicate pollutant, ...)
//   - ErrCycle          network has at least one cycle; returned as *CycleError
//   - core.ErrNodeNotFound, core.ErrEmptyNodeID from graph lookups
//
// Concurrency:
//
// A solve is sequential and assumes exclusive ownership of the graph while it
// writes results. The registry is only read.
package solver
