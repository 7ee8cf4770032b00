// Package core defines the Graph, Node and Edge types of a drainage network,
// together with the typed result records the solver attaches to them.
//
// This file declares Node, Edge, the result records, Graph, GraphOption,
// EdgeOption, sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node identifier is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent link.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// IDLabel is the label key that resolves to Edge.ID in Edge.Text.
const IDLabel = "id"

// NoTreatmentFunction is the audit tag recorded on a link when one of its flags is
// known to the performance registry but carries no function for a pollutant.
const NoTreatmentFunction = "_no_tmnt_fxn"

// Pollutant is a stable identifier of a tracked constituent (e.g. "tss", "tp").
type Pollutant string

// Node is a drainage network node: a catchment, junction, storage unit or outfall.
//
// Volume, CheckVolume, Loads and Kind are raw attributes owned by the caller.
// The solver never writes them; it replaces Result on every solve.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	// Kind is an optional descriptive type ("subcatchment", "junction", ...).
	Kind string

	// Volume is the runoff volume generated at this node (0 when absent).
	Volume float64

	// CheckVolume is an optional externally known inflow volume used for auditing.
	CheckVolume *float64

	// Loads holds source pollutant loads generated at this node.
	Loads map[Pollutant]float64

	// Result holds the computed balance; nil until the node has been solved.
	Result *NodeResult
}

// Load returns the raw source load of p at this node, or 0 if none was set.
func (n *Node) Load(p Pollutant) float64 {
	if n == nil || n.Loads == nil {
		return 0
	}

	return n.Loads[p]
}

// SetLoad records a raw source load of p at this node.
func (n *Node) SetLoad(p Pollutant, load float64) {
	if n.Loads == nil {
		n.Loads = make(map[Pollutant]float64)
	}
	n.Loads[p] = load
}

// NodeResult is the water and mass balance computed for a single node.
// Pct* fields are on a 0–100 scale.
type NodeResult struct {
	VolumeIn         float64
	VolumeOut        float64
	VolumeEff        float64
	VolumeReduced    float64
	VolumeTreated    float64
	VolumeCapture    float64
	PctVolumeReduced float64
	PctVolumeTreated float64
	PctVolumeCapture float64

	// VolumeGain is out-edge volume minus in-edge volume. Negative values
	// indicate internal losses at the node.
	VolumeGain float64

	// VolumeDiffCheck is VolumeIn minus the known check volume; nil unless a
	// check volume column was configured.
	VolumeDiffCheck *float64

	// Pollutants holds the per-pollutant balance.
	Pollutants map[Pollutant]*NodeLoad
}

// Pollutant returns the balance of p, or a zero NodeLoad if p was not solved.
func (r *NodeResult) Pollutant(p Pollutant) NodeLoad {
	if r == nil {
		return NodeLoad{}
	}
	if l, ok := r.Pollutants[p]; ok {
		return *l
	}

	return NodeLoad{}
}

// NodeLoad is the concentration and load balance of one pollutant at a node.
type NodeLoad struct {
	ConcIn         float64
	ConcEff        float64
	PctConcReduced float64
	LoadIn         float64
	LoadEff        float64
	LoadReduced    float64
	PctLoadReduced float64
}

// Edge is a directed link (conduit, weir, orifice, BMP device) between two nodes.
//
// ID carries the flag tokens that drive treatment ("BR-3-TR", "OF-4-INF").
// It need not be unique: the arena Index and (From, To, Key) identify the link.
type Edge struct {
	// Index is the position of this link in the graph's arena.
	Index int

	// From is the upstream node ID.
	From string

	// To is the downstream node ID.
	To string

	// Key is the parallel index among links sharing (From, To), starting at 0.
	Key int

	// ID is the textual, flag-bearing link identifier.
	ID string

	// Volume is the volume conveyed by this link.
	Volume float64

	// Labels holds additional textual attributes, e.g. "xtype".
	Labels map[string]string

	// Result holds computed loads; nil until the upstream node has been solved.
	Result *EdgeResult
}

// Text returns the textual attribute named key: the link ID for IDLabel or an
// empty key, otherwise the matching label ("" if absent).
func (e *Edge) Text(key string) string {
	if key == "" || key == IDLabel {
		return e.ID
	}

	return e.Labels[key]
}

// Load returns the computed load record of p on this link, or nil.
func (e *Edge) Load(p Pollutant) *EdgeLoad {
	if e == nil || e.Result == nil {
		return nil
	}

	return e.Result.Pollutants[p]
}

// EdgeResult holds the computed loads of a link and its treatment audit trail.
type EdgeResult struct {
	// Pollutants holds per-pollutant loads carried by this link.
	Pollutants map[Pollutant]*EdgeLoad

	// Treatment maps the applied flag (or NoTreatmentFunction) to the pollutants
	// it was evaluated for, in evaluation order.
	Treatment map[string][]Pollutant
}

// Tag records that flag was evaluated on this link for pollutant p.
func (r *EdgeResult) Tag(flag string, p Pollutant) {
	if r.Treatment == nil {
		r.Treatment = make(map[string][]Pollutant)
	}
	r.Treatment[flag] = append(r.Treatment[flag], p)
}

// EdgeLoad is the concentration and load carried by a link for one pollutant.
type EdgeLoad struct {
	ConcIn         float64
	ConcEff        float64
	PctConcReduced float64
	LoadIn         float64
	LoadEff        float64
	LoadReduced    float64
	PctLoadReduced float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (links from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual links when added.
type EdgeOption func(*Edge)

// WithLabel attaches a textual label to the link.
func WithLabel(key, value string) EdgeOption {
	return func(e *Edge) {
		if e.Labels == nil {
			e.Labels = make(map[string]string)
		}
		e.Labels[key] = value
	}
}

// Graph is the drainage network: a directed multigraph with an edge arena.
//
// mu protects nodes, edges, out, in and parallel.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool

	// Storage
	nodes map[string]*Node // node ID → Node
	edges []*Edge          // edge arena, Edge.Index == position

	// Adjacency as arena indices, in insertion order.
	out map[string][]int
	in  map[string][]int

	// parallel counts links per (from, to) and yields the next Edge.Key.
	parallel map[[2]string]int
}

// NewGraph creates an empty drainage network.
// By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:    make(map[string]*Node),
		out:      make(map[string][]int),
		in:       make(map[string][]int),
		parallel: make(map[[2]string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
