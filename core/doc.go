// Package core provides the in-memory drainage network that the stormnet solver
// walks: a directed multigraph of catchments, junctions, BMP devices and outfalls.
//
// The Graph G = (N, L) is specialised for runoff accounting:
//
//   - Always directed: water only flows From → To.
//   - Always a multigraph: parallel links between the same two nodes are normal
//     (a BMP overflow and its treated outlet both discharge to the same junction).
//   - Self-loops are rejected unless the graph was built WithLoops(); loaders that
//     want cycle validation to report a self-loop instead of failing early enable it.
//   - Links live in a flat arena ([]*Edge). Each link is addressable by its arena
//     Index or by the triple (From, To, Key), where Key is the parallel index.
//   - Attributes are typed records, not open maps. Raw attributes (Volume, Loads,
//     CheckVolume, ID, Labels) belong to the caller; computed attributes live in
//     the Result records written by the solver.
//
// Core Methods:
//
//	// Nodes
//	AddNode(id string) (*Node, error)   // idempotent, O(1)
//	Node(id string) (*Node, error)      // O(1)
//	HasNode(id string) bool             // O(1)
//	Nodes() []*Node                     // sorted by ID, O(N·log N)
//
//	// Links
//	AddEdge(from, to, id string, volume float64, opts ...EdgeOption) (*Edge, error)
//	Edge(from, to string, key int) (*Edge, error)
//	Edges() []*Edge                     // arena order
//
//	// Adjacency
//	OutEdges(id string) ([]*Edge, error) // insertion order
//	InEdges(id string) ([]*Edge, error)  // insertion order
//	Successors(id string) ([]string, error)
//
//	// Results
//	ResetResults()                      // drop every computed record
//	Clone() *Graph                      // deep copy of raw attributes, no results
//
// Errors:
//
//	ErrEmptyNodeID     – zero-length node ID
//	ErrNodeNotFound    – missing node
//	ErrEdgeNotFound    – missing link
//	ErrLoopNotAllowed  – self-loop without WithLoops()
//
// Concurrency: structure (node catalog, arena, adjacency) is guarded by a single
// sync.RWMutex so graphs may be built from several goroutines. Result records are
// written without locking; the solver assumes exclusive ownership while it runs.
package core
