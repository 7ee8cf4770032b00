// Package bfs provides breadth-first traces over a drainage network,
// returning link-count distances, parent links, and visit order.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/stormnet/core"
)

// ErrNeighbors is returned when fetching links from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a node ID with its depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable trace state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Trace runs a breadth-first trace on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func Trace(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start node
	if !g.HasNode(startID) {
		return nil, ErrStartNodeNotFound
	}

	// Prepare walker
	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
			Via:    make(map[string]*core.Edge, n),
		},
	}

	// Seed queue with start node (no parent)
	w.visited[startID] = true
	w.res.Depth[startID] = 0
	w.queue = append(w.queue, queueItem{id: startID})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors follows the links of item in the configured direction,
// applies filtering and MaxDepth, and enqueues each unseen node.
func (w *walker) enqueueNeighbors(item queueItem) error {
	var (
		links []*core.Edge
		err   error
	)
	if w.opts.Direction == Upstream {
		links, err = w.graph.InEdges(item.id)
	} else {
		links, err = w.graph.OutEdges(item.id)
	}
	if err != nil {
		return fmt.Errorf("%w: failed to get links of %q: %v", ErrNeighbors, item.id, err)
	}

	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, e := range links {
		if !w.opts.FilterLink(e) {
			continue
		}
		nbr := e.To
		if w.opts.Direction == Upstream {
			nbr = e.From
		}
		// first time seen?
		if !w.visited[nbr] {
			w.visited[nbr] = true
			w.res.Depth[nbr] = nextDepth
			w.res.Parent[nbr] = item.id
			w.res.Via[nbr] = e
			w.queue = append(w.queue, queueItem{id: nbr, depth: nextDepth})
		}
	}

	return nil
}
