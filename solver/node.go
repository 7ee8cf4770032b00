package solver

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/stormnet/core"
	"github.com/katalvlaran/stormnet/flags"
	"github.com/katalvlaran/stormnet/treatment"
)

// nodeSolver carries the state shared by the node solves of one network solve.
type nodeSolver struct {
	g        *core.Graph
	cfg      Config
	reg      *treatment.Registry
	logger   *slog.Logger
	metrics  *Metrics
	warnings []Warning
}

func newNodeSolver(g *core.Graph, cfg Config, o options) *nodeSolver {
	reg := cfg.Registry
	if reg == nil {
		reg = treatment.NewRegistry()
	}

	return &nodeSolver{g: g, cfg: cfg, reg: reg, logger: o.logger, metrics: o.metrics}
}

// SolveNode computes the balance of node id and writes it to the node and its
// outgoing links. Upstream nodes must already be solved; SolveNetwork takes
// care of the order.
//
// Errors: ErrInvalidConfig, core.ErrEmptyNodeID, core.ErrNodeNotFound.
func SolveNode(g *core.Graph, id string, cfg Config, opts ...Option) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	return newNodeSolver(g, cfg, applyOptions(opts)).solve(id)
}

// filter builds a flag filter over the configured attribute.
func (s *nodeSolver) filter(include, exclude []string) *flags.Filter {
	return &flags.Filter{Key: s.cfg.FlagKey, Separator: s.cfg.Separator, Include: include, Exclude: exclude}
}

// sum aggregates value over the links of id in dir passing f.
func (s *nodeSolver) sum(id string, value flags.Value, dir flags.Direction, f *flags.Filter) (float64, error) {
	v, err := flags.Aggregate(s.g, id, value, dir, f)
	if err != nil {
		return 0, fmt.Errorf("solver: %w", err)
	}

	return v, nil
}

// solve runs the water balance then the per-pollutant mass balance of id.
//
// Steps:
//  1. Reset the results of the node and its outgoing links.
//  2. Water balance from own volume and in/out link volumes.
//  3. Optional check-volume audit.
//  4. For each pollutant: influent load, per-link treatment, node effluent.
func (s *nodeSolver) solve(id string) error {
	n, err := s.g.Node(id)
	if err != nil {
		return fmt.Errorf("solver: node %q: %w", id, err)
	}
	out, err := s.g.OutEdges(id)
	if err != nil {
		return fmt.Errorf("solver: node %q: %w", id, err)
	}

	// 1) Fresh results
	res := &core.NodeResult{Pollutants: make(map[core.Pollutant]*core.NodeLoad, len(s.cfg.Pollutants))}
	for _, e := range out {
		e.Result = &core.EdgeResult{Pollutants: make(map[core.Pollutant]*core.EdgeLoad, len(s.cfg.Pollutants))}
	}

	// 2) Water balance. An outfall passes its inflow through untreated.
	edgeVolIn, err := s.sum(id, flags.EdgeVolume, flags.Inbound, nil)
	if err != nil {
		return err
	}
	volOut, volEff, volTreated := edgeVolIn, edgeVolIn, 0.0
	if len(out) > 0 {
		if volOut, err = s.sum(id, flags.EdgeVolume, flags.Outbound, nil); err != nil {
			return err
		}
		volEff = volOut
		if len(s.cfg.VolumeReductionFlags) > 0 {
			f := s.filter(nil, s.cfg.VolumeReductionFlags)
			if volEff, err = s.sum(id, flags.EdgeVolume, flags.Outbound, f); err != nil {
				return err
			}
		}
		if len(s.cfg.TreatmentFlags) > 0 {
			f := s.filter(s.cfg.TreatmentFlags, nil)
			if volTreated, err = s.sum(id, flags.EdgeVolume, flags.Outbound, f); err != nil {
				return err
			}
		}
	}
	volIn := n.Volume + edgeVolIn
	volReduced := volIn - volEff
	volCapture := volTreated + volReduced

	res.VolumeIn = volIn
	res.VolumeOut = volOut
	res.VolumeGain = volOut - edgeVolIn
	res.VolumeEff = volEff
	res.VolumeReduced = volReduced
	res.VolumeTreated = volTreated
	res.VolumeCapture = volCapture
	res.PctVolumeReduced = 100 * safeDivide(volReduced, volIn)
	res.PctVolumeTreated = 100 * safeDivide(volTreated, volIn)
	res.PctVolumeCapture = 100 * safeDivide(volCapture, volIn)

	// 3) Check volume, falling back to the node's own volume
	if s.cfg.CheckVolumeColumn != "" {
		ck := n.Volume
		if n.CheckVolume != nil {
			ck = *n.CheckVolume
		}
		diff := volIn - ck
		res.VolumeDiffCheck = &diff
	}

	// 4) Mass balance per pollutant
	for _, p := range s.cfg.Pollutants {
		upstream, err := s.sum(id, flags.EdgeLoadEff(p), flags.Inbound, nil)
		if err != nil {
			return err
		}
		loadIn := n.Load(p) + upstream

		var concIn, concEff, loadEff float64
		if volIn > 0 && loadIn > 0 {
			concIn = loadIn / volIn
			if len(out) > 0 {
				for _, e := range out {
					s.treatEdge(n, e, p, concIn, loadIn)
				}
				if loadEff, err = s.sum(id, flags.EdgeLoadEff(p), flags.Outbound, nil); err != nil {
					return err
				}
				concEff = safeDivide(loadEff, volEff)
			} else {
				loadEff = loadIn
				concEff = concIn
			}
		}

		loadReduced := loadIn - loadEff
		res.Pollutants[p] = &core.NodeLoad{
			ConcIn:         concIn,
			ConcEff:        concEff,
			PctConcReduced: 100 * safeDivide(concIn-concEff, concIn),
			LoadIn:         loadIn,
			LoadEff:        loadEff,
			LoadReduced:    loadReduced,
			PctLoadReduced: 100 * safeDivide(loadReduced, loadIn),
		}
	}

	n.Result = res
	s.metrics.nodeSolved()
	s.logger.Debug("node solved", "node", id, "vol_in", volIn, "vol_eff", volEff)

	return nil
}

// treatEdge writes the load of p carried by link e, given the node influent
// concentration concIn (> 0) and load nodeLoadIn (> 0).
func (s *nodeSolver) treatEdge(n *core.Node, e *core.Edge, p core.Pollutant, concIn, nodeLoadIn float64) {
	tokens := flags.Split(e.Text(s.cfg.FlagKey), s.cfg.Separator)

	concEff := concIn
	switch {
	case flags.ContainsAny(tokens, s.cfg.VolumeReductionFlags):
		concEff = 0
	case flags.ContainsAny(tokens, s.cfg.TreatmentFlags):
		// Only tokens known to the registry take part; the last one wins.
		for _, tok := range tokens {
			if !s.reg.HasFlag(tok) {
				continue
			}
			fn, ok := s.reg.Lookup(tok, p)
			tag := tok
			if !ok {
				fn = treatment.Identity{}
				tag = core.NoTreatmentFunction
				s.warn(Warning{Node: n.ID, Edge: e.ID, To: e.To, Key: e.Key, Flag: tok, Pollutant: p})
			}
			s.metrics.treatment(tok, string(p), ok)
			e.Result.Tag(tag, p)
			concEff = fn.Reduce(concIn)
		}
	}

	l := &core.EdgeLoad{
		ConcIn:         concIn,
		ConcEff:        concEff,
		PctConcReduced: 100 * (concIn - concEff) / concIn,
		LoadIn:         concIn * e.Volume,
		LoadEff:        concEff * e.Volume,
	}
	l.LoadReduced = l.LoadIn - l.LoadEff
	l.PctLoadReduced = 100 * l.LoadReduced / nodeLoadIn
	e.Result.Pollutants[p] = l
}

func (s *nodeSolver) warn(w Warning) {
	s.warnings = append(s.warnings, w)
	s.logger.Warn("no performance function for treatment flag",
		"flag", w.Flag, "pollutant", string(w.Pollutant), "edge", w.Edge, "node", w.Node)
}
