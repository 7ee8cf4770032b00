// Package bfs provides tunable options and error definitions
// for breadth-first traces over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/stormnet/core"
)

// Sentinel errors for trace execution.
var (
	// ErrStartNodeNotFound is returned when the start ID is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Direction selects which way links are followed.
type Direction int

const (
	// Downstream follows links From→To.
	Downstream Direction = iota
	// Upstream follows links To→From.
	Upstream
)

// Option configures a trace via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when Trace is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a trace.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Direction of travel; Downstream by default.
	Direction Direction

	// OnVisit is called when visiting a node. If it returns an error,
	// the trace aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterLink can skip links by returning false.
	FilterLink func(e *core.Edge) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - Downstream direction
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all links followed)
//   - no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Direction:  Downstream,
		OnVisit:    func(string, int) error { return nil },
		FilterLink: func(*core.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection sets the direction of travel.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		if d != Downstream && d != Upstream {
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, d)
			return
		}
		o.Direction = d
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the trace.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the trace at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterLink skips links for which fn returns false.
func WithFilterLink(fn func(e *core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterLink = fn
		}
	}
}

// Result holds the outcome of a trace:
//   - Order: nodes visited, in visit sequence (start first).
//   - Depth: map from node ID to its distance (in links) from the start.
//   - Parent: map from node ID to its predecessor in the trace tree.
//   - Via: map from node ID to the link it was first reached through.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
	Via    map[string]*core.Edge
}

// Reached returns the visited nodes excluding the start.
func (r *Result) Reached() []string {
	if len(r.Order) == 0 {
		return nil
	}

	return append([]string(nil), r.Order[1:]...)
}

// PathTo reconstructs the path from the start node to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
