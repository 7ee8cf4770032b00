// Package config loads solver settings and BMP performance tables from YAML.
//
// A settings document looks like:
//
//	flag_key: id
//	separator: "-"
//	volume_column: volume
//	pollutants: [tss, tp]
//	treatment_flags: TR          # scalar or list
//	volume_reduction_flags: [INF]
//	bmps:
//	  BR:
//	    tss: {percent_removal: 80, floor: 10}
//	    tp:  {fixed_effluent: 0.1}
//	  DD:
//	    tss: {curve: [[0, 0], [100, 40], [500, 90]]}
//	  SW: {}                     # known flag, no functions yet
//
// Omitted keys take the solver defaults. Flag lists given as a mapping are
// rejected with ErrNotList.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stormnet/core"
	"github.com/katalvlaran/stormnet/solver"
	"github.com/katalvlaran/stormnet/treatment"
)

var (
	// ErrNotList indicates a list-valued key was given as a mapping.
	ErrNotList = errors.New("config: expected a list or a scalar")

	// ErrInvalidPerformance indicates a BMP entry that does not define
	// exactly one performance function.
	ErrInvalidPerformance = errors.New("config: invalid performance entry")
)

// FlagList is a list of strings that also accepts a single scalar.
type FlagList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *FlagList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*l = FlagList{value.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("%w (line %d)", ErrNotList, value.Line)
	}
}

// Performance describes one BMP performance function. Exactly one of
// PercentRemoval, FixedEffluent or Curve must be set.
type Performance struct {
	PercentRemoval *float64     `yaml:"percent_removal,omitempty"`
	Floor          float64      `yaml:"floor,omitempty"`
	FixedEffluent  *float64     `yaml:"fixed_effluent,omitempty"`
	Curve          [][2]float64 `yaml:"curve,omitempty"`
}

// Function builds the treatment.Function described by p.
func (p Performance) Function() (treatment.Function, error) {
	set := 0
	if p.PercentRemoval != nil {
		set++
	}
	if p.FixedEffluent != nil {
		set++
	}
	if len(p.Curve) > 0 {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: need exactly one of percent_removal, fixed_effluent, curve", ErrInvalidPerformance)
	}

	switch {
	case p.PercentRemoval != nil:
		pct := *p.PercentRemoval
		if pct < 0 || pct > 100 {
			return nil, fmt.Errorf("%w: percent_removal %g outside 0..100", ErrInvalidPerformance, pct)
		}
		return treatment.PercentRemoval{Percent: pct, Floor: p.Floor}, nil
	case p.FixedEffluent != nil:
		return treatment.FixedEffluent{Conc: *p.FixedEffluent}, nil
	default:
		points := make([]treatment.Point, len(p.Curve))
		for i, xy := range p.Curve {
			points[i] = treatment.Point{In: xy[0], Eff: xy[1]}
		}
		c, err := treatment.NewCurve(points...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPerformance, err)
		}
		return c, nil
	}
}

// Settings is the YAML settings document.
type Settings struct {
	FlagKey              string                            `yaml:"flag_key"`
	Separator            string                            `yaml:"separator"`
	VolumeColumn         string                            `yaml:"volume_column"`
	CheckVolumeColumn    string                            `yaml:"check_volume_column"`
	Pollutants           FlagList                          `yaml:"pollutants"`
	TreatmentFlags       *FlagList                         `yaml:"treatment_flags"`
	VolumeReductionFlags *FlagList                         `yaml:"volume_reduction_flags"`
	BMPs                 map[string]map[string]Performance `yaml:"bmps"`
}

// Default returns the settings equivalent to solver.DefaultConfig.
func Default() *Settings {
	s := &Settings{}
	s.applyDefaults()

	return s
}

// applyDefaults fills in missing values with the solver defaults.
func (s *Settings) applyDefaults() {
	d := solver.DefaultConfig()
	if s.FlagKey == "" {
		s.FlagKey = d.FlagKey
	}
	if s.Separator == "" {
		s.Separator = d.Separator
	}
	if s.VolumeColumn == "" {
		s.VolumeColumn = d.VolumeColumn
	}
	if s.TreatmentFlags == nil {
		tf := FlagList(d.TreatmentFlags)
		s.TreatmentFlags = &tf
	}
	if s.VolumeReductionFlags == nil {
		vf := FlagList(d.VolumeReductionFlags)
		s.VolumeReductionFlags = &vf
	}
}

// Parse decodes a settings document from r. An empty document yields the
// defaults.
func Parse(r io.Reader) (*Settings, error) {
	var s Settings
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	s.applyDefaults()

	return &s, nil
}

// Load reads and parses the settings file at path.
func Load(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Registry builds the BMP performance registry. Flags with no pollutant
// entries are declared so the solver reports them.
func (s *Settings) Registry() (*treatment.Registry, error) {
	reg := treatment.NewRegistry()
	for flag, byPoc := range s.BMPs {
		if err := reg.Declare(flag); err != nil {
			return nil, fmt.Errorf("config: bmp %q: %w", flag, err)
		}
		for poc, perf := range byPoc {
			fn, err := perf.Function()
			if err != nil {
				return nil, fmt.Errorf("config: bmp %q pollutant %q: %w", flag, poc, err)
			}
			if err = reg.Register(flag, core.Pollutant(poc), fn); err != nil {
				return nil, fmt.Errorf("config: bmp %q: %w", flag, err)
			}
		}
	}

	return reg, nil
}

// SolverConfig converts the settings into a validated solver.Config.
func (s *Settings) SolverConfig() (solver.Config, error) {
	reg, err := s.Registry()
	if err != nil {
		return solver.Config{}, err
	}
	pocs := make([]core.Pollutant, len(s.Pollutants))
	for i, p := range s.Pollutants {
		pocs[i] = core.Pollutant(p)
	}
	cfg := solver.Config{
		FlagKey:           s.FlagKey,
		Separator:         s.Separator,
		VolumeColumn:      s.VolumeColumn,
		CheckVolumeColumn: s.CheckVolumeColumn,
		Pollutants:        pocs,
		Registry:          reg,
	}
	if s.TreatmentFlags != nil {
		cfg.TreatmentFlags = *s.TreatmentFlags
	}
	if s.VolumeReductionFlags != nil {
		cfg.VolumeReductionFlags = *s.VolumeReductionFlags
	}
	if err = cfg.Validate(); err != nil {
		return solver.Config{}, err
	}

	return cfg, nil
}
