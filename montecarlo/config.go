// SPDX-License-Identifier: MIT

package montecarlo

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/katalvlaran/rmt/ensemble"
)

// Ensemble selects the random-matrix family sampled by Run.
type Ensemble int

const (
	// Wishart samples W = XᵀX with X of shape P×N.
	Wishart Ensemble = iota
	// GOE samples G = (A + Aᵀ)/√2 of shape N×N.
	GOE
)

// String returns the lower-case ensemble name.
func (e Ensemble) String() string {
	switch e {
	case Wishart:
		return "wishart"
	case GOE:
		return "goe"
	}

	return fmt.Sprintf("ensemble(%d)", int(e))
}

// ErrInvalidConfig reports a Config field outside its accepted range.
var ErrInvalidConfig = errors.New("montecarlo: invalid config")

// ParseEnsemble maps "wishart" or "goe" (case-insensitive) to an Ensemble.
func ParseEnsemble(s string) (Ensemble, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wishart":
		return Wishart, nil
	case "goe":
		return GOE, nil
	}

	return 0, fmt.Errorf("ensemble %q: %w", s, ErrInvalidConfig)
}

// Defaults used by DefaultConfig.
const (
	DefaultN         = 100
	DefaultP         = 200
	DefaultTrials    = 10
	DefaultSeed      = ensemble.DefaultSeed
	DefaultNormalize = true
)

// Config describes a Monte-Carlo experiment.
type Config struct {
	Ensemble  Ensemble
	N         int    // matrix dimension
	P         int    // Wishart sample count (rows of X); ignored for GOE
	Trials    int    // number of independent matrices
	Workers   int    // max concurrent trials
	Seed      uint64 // base seed; trial t uses DeriveSeed(Seed, t)
	Normalize bool   // scale to the unit laws (W/P, G/√N)
}

// DefaultConfig returns a Wishart experiment with q = 0.5 and one worker per
// CPU.
func DefaultConfig() Config {
	return Config{
		Ensemble:  Wishart,
		N:         DefaultN,
		P:         DefaultP,
		Trials:    DefaultTrials,
		Workers:   runtime.NumCPU(),
		Seed:      DefaultSeed,
		Normalize: DefaultNormalize,
	}
}

// Validate checks every field; dimension problems wrap
// ensemble.ErrInvalidDimension, everything else ErrInvalidConfig.
func (c Config) Validate() error {
	switch c.Ensemble {
	case Wishart:
		if c.P < 1 {
			return fmt.Errorf("P=%d: %w", c.P, ensemble.ErrInvalidDimension)
		}
	case GOE:
	default:
		return fmt.Errorf("%v: %w", c.Ensemble, ErrInvalidConfig)
	}
	if c.N < 1 {
		return fmt.Errorf("N=%d: %w", c.N, ensemble.ErrInvalidDimension)
	}
	if c.Trials < 1 {
		return fmt.Errorf("Trials=%d: %w", c.Trials, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("Workers=%d: %w", c.Workers, ErrInvalidConfig)
	}

	return nil
}
