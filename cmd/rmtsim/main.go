// SPDX-License-Identifier: MIT

// Command rmtsim samples random matrices, pools their spectra and compares the
// result with the limiting law of the ensemble.
//
// Configuration comes from RMT_* environment variables, optionally loaded from
// a .env file in the working directory:
//
//	RMT_ENSEMBLE  wishart | goe          (wishart)
//	RMT_N         matrix dimension       (100)
//	RMT_P         Wishart sample count   (200)
//	RMT_TRIALS    number of matrices     (10)
//	RMT_WORKERS   concurrent trials      (NumCPU)
//	RMT_SEED      base seed              (1)
//	RMT_NORMALIZE scale to unit laws     (true)
//	RMT_BINS      ESD bins               (40)
//	RMT_SOLVER    gonum | jacobi         (gonum)
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"time"

	count "github.com/jayalane/go-counter"
	ll "github.com/jayalane/go-lll"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/rmt/eigen"
	"github.com/katalvlaran/rmt/montecarlo"
	"github.com/katalvlaran/rmt/spectral"
)

var ml *ll.Lll

func main() {
	ll.SetWriter(os.Stdout)
	ml = ll.Init("RMTSIM", "none")
	count.InitCounters()

	if err := godotenv.Load(); err != nil {
		ml.Ln("no .env file, using process environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "rmtsim:", err)
		os.Exit(1)
	}
	count.LogCounters()
}

func run(ctx context.Context) error {
	s, err := envSettings()
	if err != nil {
		return err
	}
	dec, err := eigen.ByName(s.Solver)
	if err != nil {
		return err
	}
	law, err := s.Run.Law()
	if err != nil {
		return err
	}

	ml.La("starting", s.Run.Ensemble, "N", s.Run.N, "P", s.Run.P,
		"trials", s.Run.Trials, "workers", s.Run.Workers, "solver", s.Solver)
	start := time.Now()
	res, err := montecarlo.Run(ctx, s.Run, dec)
	if err != nil {
		return err
	}
	count.MarkDistribution("run_seconds", time.Since(start).Seconds())
	for _, trial := range res.Spectra {
		count.Incr("trials")
		count.MarkDistribution("trial_eigenvalues", float64(len(trial)))
	}
	count.MarkDistribution("pooled_ratios", float64(len(res.Ratios)))

	esd, err := res.ESD(s.Bins)
	if err != nil {
		return err
	}
	printDensity(esd, law)

	fmt.Printf("\nlaw %s on [%.4f, %.4f] atom=%.4f\n", law.Name, law.Lower, law.Upper, law.Atom)
	if len(res.Ratios) > 0 {
		fmt.Printf("mean spacing ratio %.4f (GOE %.4f, Poisson %.4f)\n",
			res.MeanRatio, spectral.GOEMeanRatio, spectral.PoissonMeanRatio)
		summary, err := spectral.SummarizeSpacingRatios(res.Ratios)
		if err == nil {
			fmt.Printf("ratio median %.4f sd %.4f p05 %.4f p95 %.4f\n",
				summary.Median, summary.StdDev, summary.P05, summary.P95)
		}
	}

	ks, err := spectral.KolmogorovDistance(res.Eigenvalues, func(x float64) float64 {
		v, _ := law.CDF(x) // x is finite here
		return v
	})
	if err != nil {
		return err
	}
	above, err := spectral.CountAboveEdge(res.Eigenvalues, law.Upper)
	if err != nil {
		return err
	}
	count.MarkDistribution("above_edge", float64(above))
	fmt.Printf("kolmogorov distance %.4f, %d of %d eigenvalues above the edge\n",
		ks, above, len(res.Eigenvalues))
	ml.La("done in", time.Since(start))

	return nil
}

func printDensity(esd spectral.Density, law montecarlo.Law) {
	fmt.Printf("%10s %10s %10s\n", "x", "empirical", "law")
	for i, x := range esd.Centers {
		f, err := law.Density(x)
		if err != nil {
			ml.La("law density at", x, err)
			f = 0
		}
		count.MarkDistribution("esd_abs_error", math.Abs(esd.Values[i]-f))
		fmt.Printf("%10.4f %10.4f %10.4f\n", x, esd.Values[i], f)
	}
}
