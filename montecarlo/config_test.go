// SPDX-License-Identifier: MIT

package montecarlo_test

import (
	"testing"

	"github.com/katalvlaran/rmt/montecarlo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnsemble(t *testing.T) {
	e, err := montecarlo.ParseEnsemble(" GOE ")
	require.NoError(t, err)
	assert.Equal(t, montecarlo.GOE, e)
	e, err = montecarlo.ParseEnsemble("wishart")
	require.NoError(t, err)
	assert.Equal(t, montecarlo.Wishart, e)
	assert.Equal(t, "wishart", e.String())

	_, err = montecarlo.ParseEnsemble("gue")
	assert.ErrorIs(t, err, montecarlo.ErrInvalidConfig)
	assert.Equal(t, "ensemble(7)", montecarlo.Ensemble(7).String())
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := montecarlo.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.GreaterOrEqual(t, cfg.Workers, 1)
}

func TestLaw(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		cfg       montecarlo.Config
		lo, hi    float64
		atom      float64
		lawName   string
		inBulkPos float64
	}{
		{"wishart normalized", montecarlo.Config{Ensemble: montecarlo.Wishart, N: 50, P: 200, Trials: 1, Workers: 1, Normalize: true},
			0.25, 2.25, 0, "marchenko-pastur", 1},
		{"wishart raw", montecarlo.Config{Ensemble: montecarlo.Wishart, N: 50, P: 200, Trials: 1, Workers: 1},
			50, 450, 0, "marchenko-pastur", 200},
		{"wishart atom", montecarlo.Config{Ensemble: montecarlo.Wishart, N: 400, P: 100, Trials: 1, Workers: 1, Normalize: true},
			1, 9, 0.75, "marchenko-pastur", 4},
		{"goe normalized", montecarlo.Config{Ensemble: montecarlo.GOE, N: 9, Trials: 1, Workers: 1, Normalize: true},
			-2, 2, 0, "semicircle", 0},
		{"goe raw", montecarlo.Config{Ensemble: montecarlo.GOE, N: 9, Trials: 1, Workers: 1},
			-6, 6, 0, "semicircle", 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			law, err := tc.cfg.Law()
			require.NoError(t, err)
			assert.Equal(t, tc.lawName, law.Name)
			assert.InDelta(t, tc.lo, law.Lower, 1e-9)
			assert.InDelta(t, tc.hi, law.Upper, 1e-9)
			assert.InDelta(t, tc.atom, law.Atom, 1e-12)

			f, err := law.Density(tc.inBulkPos)
			require.NoError(t, err)
			assert.Greater(t, f, 0.0)
			c, err := law.CDF(law.Upper)
			require.NoError(t, err)
			assert.Equal(t, 1.0, c)
		})
	}

	_, err := montecarlo.Config{}.Law()
	assert.Error(t, err)
}
