package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stormnet/builder"
)

// TestIDFns verifies each IDFn for correct outputs and panics on invalid input.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},
		{"SymbolNumber_S", builder.SymbolNumberIDFn("S"), 7, "S7", false},
		{"SymbolNumber_neg", builder.SymbolNumberIDFn("S"), -1, "", true},
		{"ExcelColumnIDFn_zero", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_endSingle", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_startDouble", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumnIDFn_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -1, "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

// TestVolumeFns covers the runoff distributions.
func TestVolumeFns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, builder.DefaultRunoff, builder.DefaultVolumeFn(nil))
	assert.Equal(t, 2.5, builder.ConstantVolumeFn(2.5)(nil))
	assert.Panics(t, func() { builder.ConstantVolumeFn(-1) })

	u := builder.UniformVolumeFn(2, 4)
	assert.Equal(t, builder.DefaultRunoff, u(nil))
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := u(rng)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 4.0)
	}
	assert.Equal(t, 3.0, builder.UniformVolumeFn(3, 3)(rng))
	assert.Panics(t, func() { builder.UniformVolumeFn(-1, 2) })
	assert.Panics(t, func() { builder.UniformVolumeFn(3, 2) })
}
