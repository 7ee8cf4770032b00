// File: methods_clone.go
// Role: Cloning raw network state and clearing computed results.
// Determinism:
//   - Clone preserves node IDs, arena order, Index and Key of every link.
// Concurrency:
//   - Clone takes the read lock on the source; ResetResults takes the write lock.
package core

// Clone returns a deep copy of the raw network: configuration, nodes with their
// raw attributes, and links with IDs, volumes and labels. Results are not copied.
//
// Complexity: O(N + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var opts []GraphOption
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)

	for id, n := range g.nodes {
		cn := &Node{ID: n.ID, Kind: n.Kind, Volume: n.Volume}
		if n.CheckVolume != nil {
			v := *n.CheckVolume
			cn.CheckVolume = &v
		}
		if n.Loads != nil {
			cn.Loads = make(map[Pollutant]float64, len(n.Loads))
			for p, l := range n.Loads {
				cn.Loads[p] = l
			}
		}
		clone.nodes[id] = cn
		clone.out[id] = append([]int(nil), g.out[id]...)
		clone.in[id] = append([]int(nil), g.in[id]...)
	}

	clone.edges = make([]*Edge, len(g.edges))
	for i, e := range g.edges {
		ce := &Edge{Index: e.Index, From: e.From, To: e.To, Key: e.Key, ID: e.ID, Volume: e.Volume}
		if e.Labels != nil {
			ce.Labels = make(map[string]string, len(e.Labels))
			for k, v := range e.Labels {
				ce.Labels[k] = v
			}
		}
		clone.edges[i] = ce
	}
	for pair, n := range g.parallel {
		clone.parallel[pair] = n
	}

	return clone
}

// ResetResults drops every computed record, returning the graph to the
// "unsolved" state. Raw attributes are untouched.
//
// Complexity: O(N + E).
func (g *Graph) ResetResults() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, n := range g.nodes {
		n.Result = nil
	}
	for _, e := range g.edges {
		e.Result = nil
	}
}
