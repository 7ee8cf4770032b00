package solver

import (
	"sync"

	"github.com/katalvlaran/stormnet/core"
)

// Network pairs a graph with its Config and solves it at most once until
// Reset is called.
type Network struct {
	graph *core.Graph
	cfg   Config
	opts  []Option

	mu     sync.Mutex
	report *Report
}

// NewNetwork wraps g. opts apply to every solve.
func NewNetwork(g *core.Graph, cfg Config, opts ...Option) *Network {
	return &Network{graph: g, cfg: cfg, opts: opts}
}

// Graph returns the wrapped graph.
func (n *Network) Graph() *core.Graph { return n.graph }

// Config returns the solve configuration.
func (n *Network) Config() Config { return n.cfg }

// Results solves the network on first use and returns the cached report
// afterwards. A failed solve is not cached.
func (n *Network) Results() (*Report, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.report != nil {
		return n.report, nil
	}
	r, err := SolveNetwork(n.graph, n.cfg, n.opts...)
	if err != nil {
		return nil, err
	}
	n.report = r

	return r, nil
}

// Solved reports whether a cached report is available.
func (n *Network) Solved() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.report != nil
}

// Reset drops the cached report and every computed result on the graph.
func (n *Network) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.report = nil
	n.graph.ResetResults()
}
