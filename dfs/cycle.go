// Package dfs implements cycle detection for drainage networks in two forms:
//
//   - DetectCycles enumerates every simple node cycle with Johnson's algorithm
//     over strongly connected components, producing canonical minimal
//     rotations via Booth's algorithm.
//   - FindCycle returns the links of the first cycle reached by a DFS, as
//     (From, To, Key) triples, or nil when the network is acyclic.
//
// Self-loops are reported as one-node cycles [v, v].
//
// Complexity:
//
//   - Time:   O((N + E)(C + 1))   (C=#cycles)
//   - Memory: O(N + E)
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stormnet/core"
)

// DetectCycles enumerates every simple (elementary) node cycle of g.
// Returns (true, cycles, nil) if any cycles are found;
// if no cycles, returns (false, nil, nil).
// If a link-fetch error occurs, returns (false, nil, error).
//
// Steps:
//  1. Build a successor map (parallel links collapse to one neighbor).
//  2. Split g into strongly connected components (Tarjan).
//  3. Within each component that can hold a cycle, run Johnson's circuit
//     search from every node, in sorted order, over the nodes not yet used
//     as a start.
//  4. Canonicalize and sort the cycles by signature.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	// 1) Nil graph is treated as cycle-free
	if g == nil {
		return false, nil, nil
	}
	ids := g.NodeIDs()
	adj := make(map[string][]string, len(ids))
	for _, id := range ids {
		succ, err := g.Successors(id)
		if err != nil {
			return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
		}
		adj[id] = succ
	}

	// 2) Components
	seen := make(map[string]struct{})
	var cycles [][]string
	for _, comp := range components(ids, adj) {
		if len(comp) == 1 && IndexOf(adj[comp[0]], comp[0]) < 0 {
			continue // single node without a self-loop
		}
		// 3) Johnson: the start is the least remaining node of the component
		sort.Strings(comp)
		allowed := make(map[string]bool, len(comp))
		for _, id := range comp {
			allowed[id] = true
		}
		for _, start := range comp {
			j := johnson{adj: adj, allowed: allowed, start: start,
				blocked: make(map[string]bool), b: make(map[string]map[string]struct{})}
			j.circuit(start, func(c []string) {
				sig, canon := canonical(c)
				if _, exists := seen[sig]; !exists {
					seen[sig] = struct{}{}
					cycles = append(cycles, canon)
				}
			})
			delete(allowed, start)
		}
	}

	// 4) Sort cycles by signature for deterministic output
	sort.Slice(cycles, func(i, j int) bool {
		return JoinSig(cycles[i]) < JoinSig(cycles[j])
	})

	if len(cycles) == 0 {
		return false, nil, nil
	}

	return true, cycles, nil
}

// johnson holds the state of one circuit search rooted at start.
type johnson struct {
	adj     map[string][]string
	allowed map[string]bool
	start   string
	stack   []string
	blocked map[string]bool
	b       map[string]map[string]struct{}
}

// circuit extends the current path from v and reports each cycle back to
// start through emit. It returns true when a cycle was found below v.
func (j *johnson) circuit(v string, emit func([]string)) bool {
	found := false
	j.stack = append(j.stack, v)
	j.blocked[v] = true
	for _, w := range j.adj[v] {
		if !j.allowed[w] {
			continue
		}
		if w == j.start {
			emit(append([]string(nil), j.stack...))
			found = true
		} else if !j.blocked[w] && j.circuit(w, emit) {
			found = true
		}
	}
	if found {
		j.unblock(v)
	} else {
		for _, w := range j.adj[v] {
			if !j.allowed[w] {
				continue
			}
			if j.b[w] == nil {
				j.b[w] = make(map[string]struct{})
			}
			j.b[w][v] = struct{}{}
		}
	}
	j.stack = j.stack[:len(j.stack)-1]

	return found
}

// unblock releases u and, transitively, every node waiting on it.
func (j *johnson) unblock(u string) {
	j.blocked[u] = false
	for w := range j.b[u] {
		delete(j.b[u], w)
		if j.blocked[w] {
			j.unblock(w)
		}
	}
}

// components returns the strongly connected components of the graph given by
// ids and adj (Tarjan's algorithm).
func components(ids []string, adj map[string][]string) [][]string {
	var (
		index   = make(map[string]int, len(ids))
		low     = make(map[string]int, len(ids))
		onStack = make(map[string]bool, len(ids))
		stack   []string
		out     [][]string
		next    int
	)
	var strong func(v string)
	strong = func(v string) {
		index[v], low[v] = next, next
		next++
		stack = append(stack, v)
		onStack[v] = true
		for _, w := range adj[v] {
			if _, ok := index[w]; !ok {
				strong(w)
				low[v] = min(low[v], low[w])
			} else if onStack[w] {
				low[v] = min(low[v], index[w])
			}
		}
		if low[v] == index[v] {
			var comp []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			out = append(out, comp)
		}
	}
	for _, id := range ids {
		if _, ok := index[id]; !ok {
			strong(id)
		}
	}

	return out
}

// canonical computes the lexicographically minimal rotation of an open cycle
// [v0 ... vk] and closes it. Direction matters in a drainage network, so the
// reversed sequence is never considered.
func canonical(open []string) (string, []string) {
	rot := MinimalRotation(open)
	closed := append(append([]string(nil), rot...), rot[0])

	return JoinSig(closed), closed
}

// FindCycle returns the links of one cycle in g, in traversal order, or nil if
// g is acyclic. Roots are taken in sorted node order and links in insertion
// order, so the result is deterministic for a given network.
func FindCycle(g *core.Graph) ([]*core.Edge, error) {
	if g == nil {
		return nil, nil
	}
	ids := g.NodeIDs()
	state := make(map[string]int, len(ids))
	var trail []*core.Edge

	var walk func(id string) ([]*core.Edge, error)
	walk = func(id string) ([]*core.Edge, error) {
		state[id] = Gray
		out, err := g.OutEdges(id)
		if err != nil {
			return nil, fmt.Errorf("dfs: FindCycle: %w", err)
		}
		for _, e := range out {
			switch state[e.To] {
			case Gray:
				// Close the cycle: trail links from the one leaving e.To.
				// A self-loop leaves no trail link, so the cycle is e alone.
				i := len(trail)
				for k, t := range trail {
					if t.From == e.To {
						i = k
						break
					}
				}
				cyc := append(append([]*core.Edge(nil), trail[i:]...), e)

				return cyc, nil
			case White:
				trail = append(trail, e)
				cyc, err := walk(e.To)
				if err != nil || cyc != nil {
					return cyc, err
				}
				trail = trail[:len(trail)-1]
			}
		}
		state[id] = Black

		return nil, nil
	}

	for _, id := range ids {
		if state[id] != White {
			continue
		}
		cyc, err := walk(id)
		if err != nil || cyc != nil {
			return cyc, err
		}
	}

	return nil, nil
}
