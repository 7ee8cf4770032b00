// Package builder: functional options.
//
// Option constructors VALIDATE and PANIC on meaningless inputs; constructors
// themselves never panic and return sentinel errors instead.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/stormnet/core"
)

// BuilderOption customizes generation by mutating a builderConfig before
// any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic node ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic choices. Panics on nil;
// prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRunoffFn overrides the per-node runoff generator. Panics on nil.
func WithRunoffFn(fn VolumeFn) BuilderOption {
	if fn == nil {
		panic("builder: WithRunoffFn(nil)")
	}
	return func(c *builderConfig) {
		c.runoffFn = fn
	}
}

// WithConcentration gives every source node a load of p equal to its runoff
// times conc. Panics on an empty pollutant or a negative concentration.
func WithConcentration(p core.Pollutant, conc float64) BuilderOption {
	if p == "" || conc < 0 {
		panic(fmt.Sprintf("builder: WithConcentration(%q, %g)", p, conc))
	}
	return func(c *builderConfig) {
		if _, ok := c.concs[p]; !ok {
			c.pollutants = append(c.pollutants, p)
		}
		c.concs[p] = conc
	}
}

// WithBMP marks each generated link as treated by flag with probability p.
// Rules are tried in the order given. Panics on an empty flag or p ∉ [0,1].
func WithBMP(flag string, p float64) BuilderOption {
	if flag == "" || p < minProbability || p > maxProbability {
		panic(fmt.Sprintf("builder: WithBMP(%q, %g)", flag, p))
	}
	return func(c *builderConfig) {
		c.bmps = append(c.bmps, bmpRule{flag: flag, p: p})
	}
}

// WithInfiltration sends frac of every routed node's outflow to
// InfiltrationID. Panics unless 0 ≤ frac < 1.
func WithInfiltration(frac float64) BuilderOption {
	if frac < 0 || frac >= 1 {
		panic(fmt.Sprintf("builder: WithInfiltration(%g)", frac))
	}
	return func(c *builderConfig) {
		c.infiltration = frac
	}
}
