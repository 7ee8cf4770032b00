package treatment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stormnet/treatment"
)

func TestIdentityAndFunc(t *testing.T) {
	assert.Equal(t, 12.5, treatment.Identity{}.Reduce(12.5))

	half := treatment.Func(func(c float64) float64 { return c / 2 })
	assert.Equal(t, 5.0, half.Reduce(10))
}

func TestPercentRemoval(t *testing.T) {
	fn := treatment.PercentRemoval{Percent: 80, Floor: 10}

	cases := []struct {
		in, want float64
	}{
		{100, 20}, // plain removal
		{40, 10},  // floor binds
		{5, 5},    // already below floor
		{0, 0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, fn.Reduce(tc.in), 1e-12, "in=%g", tc.in)
	}

	noFloor := treatment.PercentRemoval{Percent: 50}
	assert.InDelta(t, 2.0, noFloor.Reduce(4), 1e-12)
}

func TestFixedEffluent(t *testing.T) {
	fn := treatment.FixedEffluent{Conc: 0.1}
	assert.Equal(t, 0.1, fn.Reduce(3))
	assert.Equal(t, 0.05, fn.Reduce(0.05))
}

func TestCurve(t *testing.T) {
	c, err := treatment.NewCurve(
		treatment.Point{In: 500, Eff: 90},
		treatment.Point{In: 0, Eff: 0},
		treatment.Point{In: 100, Eff: 40},
	)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, c.Reduce(0), 1e-12)
	assert.InDelta(t, 20.0, c.Reduce(50), 1e-12)
	assert.InDelta(t, 40.0, c.Reduce(100), 1e-12)
	assert.InDelta(t, 65.0, c.Reduce(300), 1e-12)
	assert.InDelta(t, 90.0, c.Reduce(1000), 1e-12) // clamped to last point

	// Effluent never exceeds influent.
	flat, err := treatment.NewCurve(treatment.Point{In: 0, Eff: 5}, treatment.Point{In: 10, Eff: 5})
	require.NoError(t, err)
	assert.Equal(t, 2.0, flat.Reduce(2))

	assert.Equal(t, 7.0, treatment.Curve{}.Reduce(7))
}

func TestNewCurve_Invalid(t *testing.T) {
	_, err := treatment.NewCurve()
	assert.ErrorIs(t, err, treatment.ErrInvalidFunction)

	_, err = treatment.NewCurve(treatment.Point{In: 1, Eff: 1}, treatment.Point{In: 1, Eff: 0})
	assert.ErrorIs(t, err, treatment.ErrInvalidFunction)
}
