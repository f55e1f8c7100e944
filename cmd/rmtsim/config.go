// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/rmt/eigen"
	"github.com/katalvlaran/rmt/montecarlo"
)

const defaultBins = 40

// settings is the command configuration read from the environment.
type settings struct {
	Run    montecarlo.Config
	Bins   int
	Solver string
}

// loadSettings reads RMT_* variables over the montecarlo defaults.
// Unset variables keep their default; malformed ones are an error.
func loadSettings(getenv func(string) string) (settings, error) {
	s := settings{
		Run:    montecarlo.DefaultConfig(),
		Bins:   defaultBins,
		Solver: eigen.SolverGonum,
	}

	if v := getenv("RMT_ENSEMBLE"); v != "" {
		e, err := montecarlo.ParseEnsemble(v)
		if err != nil {
			return settings{}, err
		}
		s.Run.Ensemble = e
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"RMT_N", &s.Run.N},
		{"RMT_P", &s.Run.P},
		{"RMT_TRIALS", &s.Run.Trials},
		{"RMT_WORKERS", &s.Run.Workers},
		{"RMT_BINS", &s.Bins},
	}
	for _, it := range ints {
		v := getenv(it.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return settings{}, fmt.Errorf("%s=%q: %w", it.key, v, err)
		}
		*it.dst = n
	}
	if v := getenv("RMT_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return settings{}, fmt.Errorf("RMT_SEED=%q: %w", v, err)
		}
		s.Run.Seed = seed
	}
	if v := getenv("RMT_NORMALIZE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return settings{}, fmt.Errorf("RMT_NORMALIZE=%q: %w", v, err)
		}
		s.Run.Normalize = b
	}
	if v := getenv("RMT_SOLVER"); v != "" {
		s.Solver = v
	}
	if s.Bins < 1 {
		return settings{}, fmt.Errorf("RMT_BINS=%d: must be positive", s.Bins)
	}

	return s, s.Run.Validate()
}

// envSettings is loadSettings over the process environment.
func envSettings() (settings, error) {
	return loadSettings(os.Getenv)
}
