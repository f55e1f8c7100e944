// SPDX-License-Identifier: MIT

// Package montecarlo runs repeated ensemble trials and pools their spectra.
//
// Each trial t draws one matrix from a source seeded with
// ensemble.DeriveSeed(cfg.Seed, t), decomposes it, and records its
// eigenvalues and symmetric spacing ratios. Trials run concurrently on at most
// cfg.Workers goroutines, but results are written into per-trial slots and
// pooled in trial order, so a Result depends only on the Config and the
// Decomposer, never on scheduling.
//
// Law returns the limiting eigenvalue law matching a Config, so pooled
// spectra can be compared with density and spectral helpers.
package montecarlo
