// File: methods_edges.go
// Role: Link lifecycle & queries: AddEdge/Edge/EdgeAt/Edges/EdgeCount.
// Determinism:
//   - Edges() returns links in arena (insertion) order.
//   - Edge.Key is the parallel index among links sharing (From, To), starting at 0.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
package core

// AddEdge appends a new link from → to to the arena and returns it.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure endpoints exist (created on demand, like the node list of an
//     edge-list import).
//  3. Assign Index (arena position) and Key (next parallel index).
//  4. Apply opts, store in the arena, link adjacency.
//
// id is the flag-bearing identifier and may repeat across links.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to, id string, volume float64, opts ...EdgeOption) (*Edge, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return nil, ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return nil, ErrLoopNotAllowed
	}

	// 2) Ensure nodes exist
	g.addNodeLocked(from)
	g.addNodeLocked(to)

	// 3) Identity
	pair := [2]string{from, to}
	e := &Edge{
		Index:  len(g.edges),
		From:   from,
		To:     to,
		Key:    g.parallel[pair],
		ID:     id,
		Volume: volume,
	}
	for _, opt := range opts {
		opt(e)
	}
	g.parallel[pair]++

	// 4) Store and link adjacency
	g.edges = append(g.edges, e)
	g.out[from] = append(g.out[from], e.Index)
	g.in[to] = append(g.in[to], e.Index)

	return e, nil
}

// Edge returns the link addressed by (from, to, key).
//
// Errors: ErrEmptyNodeID, ErrEdgeNotFound.
// Complexity: O(out-degree(from)).
func (g *Graph) Edge(from, to string, key int) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, idx := range g.out[from] {
		e := g.edges[idx]
		if e.To == to && e.Key == key {
			return e, nil
		}
	}

	return nil, ErrEdgeNotFound
}

// EdgeAt returns the link stored at arena position idx.
//
// Errors: ErrEdgeNotFound if idx is out of range.
// Complexity: O(1).
func (g *Graph) EdgeAt(idx int) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.edges) {
		return nil, ErrEdgeNotFound
	}

	return g.edges[idx], nil
}

// Edges returns all links in arena order. The slice is a copy; the links are live.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the total number of links.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
