// Package builder provides runoff volume distributions for source nodes.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultRunoff is the runoff assigned to each source node when no custom
// VolumeFn is provided.
const DefaultRunoff float64 = 1

// VolumeFn produces a runoff volume given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type VolumeFn func(rng *rand.Rand) float64

// DefaultVolumeFn always returns DefaultRunoff.
func DefaultVolumeFn(_ *rand.Rand) float64 {
	return DefaultRunoff
}

// ConstantVolumeFn returns a VolumeFn that always yields value.
// Panics if value < 0.
func ConstantVolumeFn(value float64) VolumeFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantVolumeFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformVolumeFn returns a VolumeFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min. If rng is nil, yields DefaultRunoff.
func UniformVolumeFn(min, max float64) VolumeFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformVolumeFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultRunoff
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// WithConstantRunoff sets a fixed runoff via ConstantVolumeFn.
func WithConstantRunoff(v float64) BuilderOption {
	return WithRunoffFn(ConstantVolumeFn(v))
}

// WithUniformRunoff sets runoff ∼ U[min,max) via UniformVolumeFn.
func WithUniformRunoff(min, max float64) BuilderOption {
	return WithRunoffFn(UniformVolumeFn(min, max))
}
