package flags

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stormnet/core"
)

// DefaultSeparator splits link identifiers into flag tokens.
const DefaultSeparator = "-"

// Direction selects which links of a node are aggregated.
type Direction int

const (
	// Incident selects the links a node has. On a directed drainage network
	// that is the outbound set.
	Incident Direction = iota
	// Inbound selects links draining into the node.
	Inbound
	// Outbound selects links leaving the node.
	Outbound
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Incident:
		return "incident"
	case Inbound:
		return "inbound"
	case Outbound:
		return "outbound"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Split returns the tokens of text separated by sep. An empty sep falls back to
// DefaultSeparator.
func Split(text, sep string) []string {
	if sep == "" {
		sep = DefaultSeparator
	}

	return strings.Split(text, sep)
}

// ContainsAny reports whether any of flags appears verbatim among tokens.
func ContainsAny(tokens, flags []string) bool {
	for _, f := range flags {
		for _, t := range tokens {
			if t == f {
				return true
			}
		}
	}

	return false
}

// Filter selects links by the flag tokens of one textual attribute.
//
// A nil Include selects every link; a nil Exclude rejects none. An empty but
// non-nil Include selects nothing.
type Filter struct {
	// Key names the attribute to tokenize: core.IDLabel (or "") for Edge.ID,
	// otherwise an edge label.
	Key string

	// Separator splits the attribute; "" means DefaultSeparator.
	Separator string

	// Include lists tokens of which at least one must be present.
	Include []string

	// Exclude lists tokens of which none may be present.
	Exclude []string
}

// Match reports whether e passes the filter. A nil filter matches everything.
func (f *Filter) Match(e *core.Edge) bool {
	if f == nil {
		return true
	}
	tokens := Split(e.Text(f.Key), f.Separator)
	if f.Include != nil && !ContainsAny(tokens, f.Include) {
		return false
	}
	if f.Exclude != nil && ContainsAny(tokens, f.Exclude) {
		return false
	}

	return true
}

// Value reads a numeric attribute of a link. Missing attributes read as 0.
type Value func(e *core.Edge) float64

// EdgeVolume reads the conveyed volume.
func EdgeVolume(e *core.Edge) float64 { return e.Volume }

// EdgeLoadEff returns a Value reading the effluent load of p.
func EdgeLoadEff(p core.Pollutant) Value {
	return func(e *core.Edge) float64 {
		if l := e.Load(p); l != nil {
			return l.LoadEff
		}

		return 0
	}
}

// EdgeLoadIn returns a Value reading the influent load of p.
func EdgeLoadIn(p core.Pollutant) Value {
	return func(e *core.Edge) float64 {
		if l := e.Load(p); l != nil {
			return l.LoadIn
		}

		return 0
	}
}

// Aggregate sums value over the links of node in direction dir that pass f.
// It returns 0 when no link matches.
//
// Errors: core.ErrEmptyNodeID, core.ErrNodeNotFound.
// Complexity: O(deg(node) · tokens).
func Aggregate(g *core.Graph, node string, value Value, dir Direction, f *Filter) (float64, error) {
	var (
		edges []*core.Edge
		err   error
	)
	switch dir {
	case Inbound:
		edges, err = g.InEdges(node)
	case Incident, Outbound:
		edges, err = g.OutEdges(node)
	default:
		return 0, fmt.Errorf("flags: unknown direction %v", dir)
	}
	if err != nil {
		return 0, fmt.Errorf("flags: aggregate %q: %w", node, err)
	}

	total := 0.0
	for _, e := range edges {
		if f.Match(e) {
			total += value(e)
		}
	}

	return total, nil
}
