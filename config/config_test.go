package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stormnet/config"
	"github.com/katalvlaran/stormnet/core"
	"github.com/katalvlaran/stormnet/solver"
)

const settingsYAML = `
separator: "-"
volume_column: vol
check_volume_column: vol_ck
pollutants: [tss, tp]
treatment_flags: TR
volume_reduction_flags: [INF, ET]
bmps:
  BR:
    tss: {percent_removal: 80, floor: 10}
    tp:  {fixed_effluent: 0.1}
  DD:
    tss: {curve: [[0, 0], [100, 40], [500, 90]]}
  SW: {}
`

func TestParse(t *testing.T) {
	s, err := config.Parse(strings.NewReader(settingsYAML))
	require.NoError(t, err)

	assert.Equal(t, core.IDLabel, s.FlagKey)
	assert.Equal(t, "vol", s.VolumeColumn)
	assert.Equal(t, config.FlagList{"tss", "tp"}, s.Pollutants)
	assert.Equal(t, config.FlagList{"TR"}, *s.TreatmentFlags)
	assert.Equal(t, config.FlagList{"INF", "ET"}, *s.VolumeReductionFlags)

	cfg, err := s.SolverConfig()
	require.NoError(t, err)
	assert.Equal(t, []core.Pollutant{"tss", "tp"}, cfg.Pollutants)
	assert.Equal(t, "vol_ck", cfg.CheckVolumeColumn)
	assert.Equal(t, []string{"BR", "DD", "SW"}, cfg.Registry.Flags())

	fn, ok := cfg.Registry.Lookup("BR", "tss")
	require.True(t, ok)
	assert.InDelta(t, 20.0, fn.Reduce(100), 1e-12)
	assert.InDelta(t, 10.0, fn.Reduce(30), 1e-12)

	fn, ok = cfg.Registry.Lookup("BR", "tp")
	require.True(t, ok)
	assert.Equal(t, 0.1, fn.Reduce(2))

	fn, ok = cfg.Registry.Lookup("DD", "tss")
	require.True(t, ok)
	assert.InDelta(t, 65.0, fn.Reduce(300), 1e-12)

	_, ok = cfg.Registry.Lookup("SW", "tss")
	assert.False(t, ok)
	assert.True(t, cfg.Registry.HasFlag("SW"))
}

func TestParse_Defaults(t *testing.T) {
	s, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), s)

	cfg, err := s.SolverConfig()
	require.NoError(t, err)
	d := solver.DefaultConfig()
	assert.Equal(t, d.FlagKey, cfg.FlagKey)
	assert.Equal(t, d.Separator, cfg.Separator)
	assert.Equal(t, d.VolumeColumn, cfg.VolumeColumn)
	assert.Equal(t, d.TreatmentFlags, cfg.TreatmentFlags)
	assert.Equal(t, d.VolumeReductionFlags, cfg.VolumeReductionFlags)
	assert.Empty(t, cfg.Pollutants)
}

func TestParse_ExplicitEmptyFlags(t *testing.T) {
	s, err := config.Parse(strings.NewReader("treatment_flags: []\n"))
	require.NoError(t, err)
	cfg, err := s.SolverConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.TreatmentFlags)
	assert.Equal(t, []string{"INF"}, cfg.VolumeReductionFlags)
}

func TestParse_NotList(t *testing.T) {
	_, err := config.Parse(strings.NewReader("treatment_flags: {TR: 1}\n"))
	assert.ErrorIs(t, err, config.ErrNotList)

	_, err = config.Parse(strings.NewReader("pollutants:\n  tss: yes\n"))
	assert.ErrorIs(t, err, config.ErrNotList)
}

func TestParse_Malformed(t *testing.T) {
	_, err := config.Parse(strings.NewReader("pollutants: [tss\n"))
	assert.Error(t, err)
}

func TestPerformance_Invalid(t *testing.T) {
	cases := map[string]string{
		"none":      "bmps:\n  BR:\n    tss: {floor: 3}\n",
		"two":       "bmps:\n  BR:\n    tss: {percent_removal: 50, fixed_effluent: 2}\n",
		"pct range": "bmps:\n  BR:\n    tss: {percent_removal: 150}\n",
		"dup curve": "bmps:\n  BR:\n    tss: {curve: [[1, 1], [1, 0]]}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := config.Parse(strings.NewReader(doc))
			require.NoError(t, err)
			_, err = s.SolverConfig()
			assert.ErrorIs(t, err, config.ErrInvalidPerformance)
		})
	}
}

func TestSolverConfig_Invalid(t *testing.T) {
	s, err := config.Parse(strings.NewReader("pollutants: [tss, tss]\n"))
	require.NoError(t, err)
	_, err = s.SolverConfig()
	assert.ErrorIs(t, err, solver.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(settingsYAML), 0o644))

	s, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "vol", s.VolumeColumn)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
