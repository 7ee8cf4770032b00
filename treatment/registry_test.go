package treatment_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stormnet/treatment"
)

func TestRegistry_RegisterLookup(t *testing.T) {
	r := treatment.NewRegistry()
	require.NoError(t, r.Register("BR", "tss", treatment.PercentRemoval{Percent: 80}))
	require.NoError(t, r.Register("BR", "tp", treatment.FixedEffluent{Conc: 0.1}))
	require.NoError(t, r.Register("DD", "tss", treatment.Identity{}))

	fn, ok := r.Lookup("BR", "tss")
	require.True(t, ok)
	assert.InDelta(t, 20.0, fn.Reduce(100), 1e-12)

	_, ok = r.Lookup("BR", "zn")
	assert.False(t, ok)
	_, ok = r.Lookup("XX", "tss")
	assert.False(t, ok)

	assert.True(t, r.HasFlag("DD"))
	assert.False(t, r.HasFlag("TR"))
	assert.Equal(t, []string{"BR", "DD"}, r.Flags())

	// Replacement
	require.NoError(t, r.Register("BR", "tss", treatment.Identity{}))
	fn, _ = r.Lookup("BR", "tss")
	assert.Equal(t, 100.0, fn.Reduce(100))
}

func TestRegistry_Declare(t *testing.T) {
	r := treatment.NewRegistry()
	require.NoError(t, r.Declare("SW"))
	assert.True(t, r.HasFlag("SW"))
	_, ok := r.Lookup("SW", "tss")
	assert.False(t, ok)
	assert.ErrorIs(t, r.Declare(""), treatment.ErrEmptyFlag)
}

func TestRegistry_Errors(t *testing.T) {
	r := treatment.NewRegistry()
	assert.ErrorIs(t, r.Register("", "tss", treatment.Identity{}), treatment.ErrEmptyFlag)
	assert.ErrorIs(t, r.Register("BR", "", treatment.Identity{}), treatment.ErrEmptyPollutant)
	assert.ErrorIs(t, r.Register("BR", "tss", nil), treatment.ErrInvalidFunction)
}

func TestRegistry_Nil(t *testing.T) {
	var r *treatment.Registry
	_, ok := r.Lookup("BR", "tss")
	assert.False(t, ok)
	assert.False(t, r.HasFlag("BR"))
	assert.Nil(t, r.Flags())
}

func TestRegistry_ConcurrentLookup(t *testing.T) {
	r := treatment.NewRegistry()
	require.NoError(t, r.Register("BR", "tss", treatment.PercentRemoval{Percent: 50}))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				fn, ok := r.Lookup("BR", "tss")
				if assert.True(t, ok) {
					assert.Equal(t, 1.0, fn.Reduce(2))
				}
			}
		}()
	}
	wg.Wait()
}
