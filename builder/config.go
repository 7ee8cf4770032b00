package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/stormnet/core"
)

// bmpRule marks a link as treated by flag with probability p.
type bmpRule struct {
	flag string
	p    float64
}

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Runoff generated at each source node.
	runoffFn VolumeFn
	// Event mean concentration per pollutant; load = runoff * conc.
	concs map[core.Pollutant]float64
	// pollutants in the order they were configured.
	pollutants []core.Pollutant
	// BMP rules, tried in order; first hit names the link.
	bmps []bmpRule
	// Fraction of each node outflow sent to InfiltrationID.
	infiltration float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		runoffFn: DefaultVolumeFn,
		concs:    make(map[core.Pollutant]float64),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// source sets runoff and pollutant loads on a generated source node.
func (c builderConfig) source(n *core.Node) {
	n.Volume = c.runoffFn(c.rng)
	for _, p := range c.pollutants {
		n.SetLoad(p, n.Volume*c.concs[p])
	}
}

// linkID names the next link of g. A BMP rule with p == 1 always applies;
// 0 < p < 1 draws from the RNG and is skipped when there is none.
func (c builderConfig) linkID(g *core.Graph) string {
	idx := g.EdgeCount()
	for _, r := range c.bmps {
		hit := r.p >= maxProbability
		if !hit && r.p > minProbability && c.rng != nil {
			hit = c.rng.Float64() < r.p
		}
		if hit {
			return fmt.Sprintf(treatmentIDFmt, r.flag, idx)
		}
	}

	return fmt.Sprintf(conveyanceIDFmt, idx)
}
