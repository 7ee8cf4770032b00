package solver

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stormnet/core"
	"github.com/katalvlaran/stormnet/treatment"
)

// Default configuration values.
const (
	DefaultFlagKey      = core.IDLabel
	DefaultSeparator    = "-"
	DefaultVolumeColumn = "volume"
)

// Config drives a solve.
type Config struct {
	// FlagKey names the link attribute carrying flag tokens (core.IDLabel
	// for Edge.ID, otherwise a label).
	FlagKey string

	// Separator splits the flag attribute into tokens.
	Separator string

	// VolumeColumn names the volume quantity in tabular output ("vol" gives
	// "vol_in", "vol_eff", ...).
	VolumeColumn string

	// CheckVolumeColumn enables the check-volume audit when non-empty.
	CheckVolumeColumn string

	// Pollutants are the tracked constituents, in output order.
	Pollutants []core.Pollutant

	// TreatmentFlags mark links whose tokens select performance functions.
	TreatmentFlags []string

	// VolumeReductionFlags mark links that eliminate volume and load.
	VolumeReductionFlags []string

	// Registry supplies the performance functions; nil acts as empty.
	Registry *treatment.Registry
}

// DefaultConfig returns the defaults: flags in the link ID split on "-",
// "TR" marks treatment and "INF" marks volume reduction.
func DefaultConfig() Config {
	return Config{
		FlagKey:              DefaultFlagKey,
		Separator:            DefaultSeparator,
		VolumeColumn:         DefaultVolumeColumn,
		TreatmentFlags:       []string{"TR"},
		VolumeReductionFlags: []string{"INF"},
		Registry:             treatment.NewRegistry(),
	}
}

// Validate reports the first problem that would make a solve meaningless.
//
// Steps:
//  1. Separator and VolumeColumn must be non-empty.
//  2. Pollutants must be non-empty strings without duplicates, distinct from
//     the volume and check volume columns.
//  3. Flags must be non-empty and must not contain the separator, otherwise
//     they could never equal a token.
func (c Config) Validate() error {
	// 1) Scalars
	if c.Separator == "" {
		return fmt.Errorf("%w: separator is empty", ErrInvalidConfig)
	}
	if c.VolumeColumn == "" {
		return fmt.Errorf("%w: volume column is empty", ErrInvalidConfig)
	}

	// 2) Pollutants
	seen := make(map[core.Pollutant]struct{}, len(c.Pollutants))
	for _, p := range c.Pollutants {
		if p == "" {
			return fmt.Errorf("%w: empty pollutant name", ErrInvalidConfig)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: duplicate pollutant %q", ErrInvalidConfig, p)
		}
		if string(p) == c.VolumeColumn || string(p) == c.CheckVolumeColumn {
			return fmt.Errorf("%w: pollutant %q names a volume column", ErrInvalidConfig, p)
		}
		seen[p] = struct{}{}
	}

	// 3) Flags
	for _, group := range [][]string{c.TreatmentFlags, c.VolumeReductionFlags} {
		for _, f := range group {
			if f == "" {
				return fmt.Errorf("%w: empty flag", ErrInvalidConfig)
			}
			if strings.Contains(f, c.Separator) {
				return fmt.Errorf("%w: flag %q contains separator %q", ErrInvalidConfig, f, c.Separator)
			}
		}
	}

	return nil
}
