// File: methods_adjacent.go
// Role: Neighborhood APIs (OutEdges, InEdges, Successors, Predecessors).
// Determinism:
//   - OutEdges/InEdges return links in insertion order.
//   - Successors/Predecessors return unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold mu read lock.
package core

import "sort"

// OutEdges returns the links leaving node id, in insertion order.
//
// Returns pointers to live arena links. Raw fields are read-only by convention;
// the solver writes only Edge.Result.
//
// Errors: ErrEmptyNodeID, ErrNodeNotFound.
// Complexity: O(out-degree).
func (g *Graph) OutEdges(id string) ([]*Edge, error) {
	return g.incident(id, true)
}

// InEdges returns the links entering node id, in insertion order.
//
// Errors: ErrEmptyNodeID, ErrNodeNotFound.
// Complexity: O(in-degree).
func (g *Graph) InEdges(id string) ([]*Edge, error) {
	return g.incident(id, false)
}

// incident collects the out (or in) links of id under the read lock.
func (g *Graph) incident(id string, outbound bool) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	idx := g.in[id]
	if outbound {
		idx = g.out[id]
	}
	out := make([]*Edge, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.edges[i])
	}

	return out, nil
}

// Successors returns the unique downstream neighbors of id, sorted ascending.
//
// Errors: propagated from OutEdges.
func (g *Graph) Successors(id string) ([]string, error) {
	edges, err := g.OutEdges(id)
	if err != nil {
		return nil, err
	}

	return uniqueSorted(edges, func(e *Edge) string { return e.To }), nil
}

// Predecessors returns the unique upstream neighbors of id, sorted ascending.
//
// Errors: propagated from InEdges.
func (g *Graph) Predecessors(id string) ([]string, error) {
	edges, err := g.InEdges(id)
	if err != nil {
		return nil, err
	}

	return uniqueSorted(edges, func(e *Edge) string { return e.From }), nil
}

// uniqueSorted projects edges through pick and returns the distinct values sorted.
func uniqueSorted(edges []*Edge, pick func(*Edge) string) []string {
	set := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		id := pick(e)
		if _, seen := set[id]; seen {
			continue
		}
		set[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
