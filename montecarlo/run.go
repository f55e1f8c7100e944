// SPDX-License-Identifier: MIT

package montecarlo

import (
	"context"
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rmt/eigen"
	"github.com/katalvlaran/rmt/ensemble"
	"github.com/katalvlaran/rmt/matrix"
	"github.com/katalvlaran/rmt/spectral"
)

// Result holds the pooled output of Run.
type Result struct {
	Config Config

	// Spectra[t] is the ascending spectrum of trial t.
	Spectra [][]float64

	// Eigenvalues concatenates Spectra in trial order.
	Eigenvalues []float64

	// Ratios concatenates the symmetric spacing ratios of every trial in
	// trial order. Trials with fewer than three eigenvalues, or whose
	// spacings are all degenerate, contribute nothing. For Wishart with
	// N > P the N-P near-zero eigenvalues produce ratios of rounding noise.
	Ratios []float64

	// MeanRatio is the mean of Ratios, or 0 when Ratios is empty.
	MeanRatio float64
}

// ESD returns the empirical spectral density of the pooled eigenvalues.
func (r *Result) ESD(bins int) (spectral.Density, error) {
	return spectral.EmpiricalSpectralDensity(r.Eigenvalues, bins)
}

// trialOutput is what a single trial writes into its slot.
type trialOutput struct {
	eigs   []float64
	ratios []float64
}

// Run executes cfg.Trials independent trials and pools their spectra.
//
// Implementation:
//   - Stage 1: validate cfg; a nil dec selects eigen.Default().
//   - Stage 2: launch one errgroup task per trial, limited to cfg.Workers in
//     flight. Trial t samples from ensemble.NewSource(DeriveSeed(cfg.Seed, t))
//     and writes only outputs[t].
//   - Stage 3: after Wait, concatenate outputs in trial order.
//
// Behavior highlights:
//   - Results are bit-identical for any Workers value.
//   - The first failing trial cancels the rest; its error is returned.
//   - ctx cancellation stops launching new trials and returns ctx.Err().
//
// dec must be safe for concurrent use; Symmetric and Jacobi are.
func Run(ctx context.Context, cfg Config, dec eigen.Decomposer) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("montecarlo.Run: %w", err)
	}
	if dec == nil {
		dec = eigen.Default()
	}

	outputs := make([]trialOutput, cfg.Trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for t := 0; t < cfg.Trials; t++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := runTrial(cfg, dec, t)
			if err != nil {
				return fmt.Errorf("trial %d: %w", t, err)
			}
			outputs[t] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("montecarlo.Run: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("montecarlo.Run: %w", err)
	}

	res := &Result{Config: cfg, Spectra: make([][]float64, cfg.Trials)}
	for t, out := range outputs {
		res.Spectra[t] = out.eigs
		res.Eigenvalues = append(res.Eigenvalues, out.eigs...)
		res.Ratios = append(res.Ratios, out.ratios...)
	}
	if len(res.Ratios) > 0 {
		mean, err := stats.Mean(res.Ratios)
		if err != nil {
			return nil, fmt.Errorf("montecarlo.Run: %w", err)
		}
		res.MeanRatio = mean
	}

	return res, nil
}

// runTrial samples, decomposes and summarizes trial t.
func runTrial(cfg Config, dec eigen.Decomposer, t int) (trialOutput, error) {
	src := ensemble.NewSource(ensemble.DeriveSeed(cfg.Seed, uint64(t)))
	m, err := sample(cfg, src)
	if err != nil {
		return trialOutput{}, err
	}
	eigs, err := dec.Decompose(m)
	if err != nil {
		return trialOutput{}, err
	}

	out := trialOutput{eigs: eigs}
	if len(eigs) < 3 {
		return out, nil
	}
	ratios, err := spectral.SymmetricSpacingRatios(eigs)
	switch {
	case errors.Is(err, spectral.ErrDegenerateSpacing):
		return out, nil
	case err != nil:
		return trialOutput{}, err
	}
	out.ratios = ratios

	return out, nil
}

func sample(cfg Config, src ensemble.Source) (*matrix.Dense, error) {
	switch {
	case cfg.Ensemble == GOE && cfg.Normalize:
		return ensemble.SampleGOENormalized(src, cfg.N)
	case cfg.Ensemble == GOE:
		return ensemble.SampleGOE(src, cfg.N)
	case cfg.Normalize:
		return ensemble.SampleWishartNormalized(src, cfg.N, cfg.P)
	default:
		return ensemble.SampleWishart(src, cfg.N, cfg.P)
	}
}
