// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and NodeIDs() return nodes sorted lexicographically by ID.
//
// Concurrency:
//   - Node catalog protected by mu.
package core

import "sort"

// AddNode inserts a node if missing (idempotent) and returns it.
//
// Steps:
//  1. Validate non-empty ID (ErrEmptyNodeID).
//  2. Lock mu; return the existing node when present.
//  3. Otherwise create the node and its adjacency buckets.
//
// The returned pointer is the live catalog entry; callers set raw attributes
// (Volume, Loads, ...) on it before solving.
//
// Complexity: O(1).
func (g *Graph) AddNode(id string) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked(id), nil
}

// addNodeLocked returns the node id, creating it if needed. Caller holds mu.
func (g *Graph) addNodeLocked(id string) *Node {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	n := &Node{ID: id}
	g.nodes[id] = n
	g.out[id] = nil
	g.in[id] = nil

	return n
}

// Node returns the node with the given ID.
//
// Errors: ErrEmptyNodeID, ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Node(id string) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// HasNode reports whether the graph contains a node with the given ID.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns all nodes sorted by ID ascending.
// Complexity: O(N log N).
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeIDs returns all node IDs sorted ascending.
// Complexity: O(N log N).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Terminal reports whether node id has no outgoing links (an outfall).
//
// Errors: ErrEmptyNodeID, ErrNodeNotFound.
func (g *Graph) Terminal(id string) (bool, error) {
	if id == "" {
		return false, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return false, ErrNodeNotFound
	}

	return len(g.out[id]) == 0, nil
}
