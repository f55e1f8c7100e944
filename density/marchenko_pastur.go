// SPDX-License-Identifier: MIT

package density

import (
	"math"

	"github.com/katalvlaran/rmt/numeric"
)

// Support describes the Marchenko–Pastur law for a given (q, σ²).
//
//   - Lower, Upper: the edges λ⁻ = σ²(1-√q)² and λ⁺ = σ²(1+√q)².
//   - Atom: the point mass at zero, max(0, 1-1/q). It is zero for q ≤ 1.
type Support struct {
	Lower float64
	Upper float64
	Atom  float64
}

// Contains reports whether x lies in the closed interval [Lower, Upper].
func (s Support) Contains(x float64) bool {
	return x >= s.Lower && x <= s.Upper
}

// Width returns Upper - Lower.
func (s Support) Width() float64 {
	return s.Upper - s.Lower
}

// validateMP checks q and σ² and returns the support.
func validateMP(op string, q, sigma2 float64) (Support, error) {
	if err := numeric.RequirePositive(q); err != nil {
		return Support{}, domainErrorf(op, "q", q)
	}
	if err := numeric.RequirePositive(sigma2); err != nil {
		return Support{}, domainErrorf(op, "sigma2", sigma2)
	}

	sq := math.Sqrt(q)
	s := Support{
		Lower: sigma2 * (1 - sq) * (1 - sq),
		Upper: sigma2 * (1 + sq) * (1 + sq),
	}
	if q > 1 {
		s.Atom = 1 - 1/q
	}
	if _, hi := unitEdges(q); !numeric.IsFinite(s.Upper) || !numeric.IsFinite(hi) {
		return Support{}, domainErrorf(op, "sigma2*q", sigma2*q) // edges overflow float64
	}

	return s, nil
}

// unitEdges returns the support edges of MP(q, 1). Every kernel rescales x by
// 1/σ² and evaluates against these, so no intermediate grows with σ².
func unitEdges(q float64) (lo, hi float64) {
	sq := math.Sqrt(q)

	return (1 - sq) * (1 - sq), (1 + sq) * (1 + sq)
}

// MarchenkoPasturSupport returns the edges and the zero atom of the
// Marchenko–Pastur law with ratio q and variance sigma2.
//
// Errors: ErrDomain if q or sigma2 is not finite and > 0.
//
// Example: q = 0.25, σ² = 1 gives Lower = 0.25, Upper = 2.25, Atom = 0.
func MarchenkoPasturSupport(q, sigma2 float64) (Support, error) {
	return validateMP(opMPSupport, q, sigma2)
}

// MarchenkoPasturDensity evaluates the continuous part of the Marchenko–Pastur
// density at x:
//
//	f(x) = √((λ⁺-x)(x-λ⁻)) / (2π·σ²·q·x)   for λ⁻ < x < λ⁺
//	f(x) = 0                               otherwise
//
// The value is computed as g(x/σ²)/σ², where g is the MP(q, 1) density, so
// large σ² cannot overflow the intermediate products.
//
// Behavior highlights:
//   - The edges themselves evaluate to exactly 0, as does x = 0 when q ≤ 1.
//   - For q > 1 the atom at zero is not included; the continuous part then
//     integrates to 1/q. Use MarchenkoPasturSupport for the atom weight.
//   - ±Inf is a valid evaluation point outside the support.
//
// Errors: ErrDomain for bad q or sigma2, or a NaN x.
// Complexity: O(1).
func MarchenkoPasturDensity(x, q, sigma2 float64) (float64, error) {
	s, err := validateMP(opMPDensity, q, sigma2)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(x) {
		return 0, domainErrorf(opMPDensity, "x", x)
	}
	if x <= s.Lower || x >= s.Upper || x <= 0 {
		return 0, nil
	}

	t := x / sigma2
	lo, hi := unitEdges(q)
	if t <= lo || t >= hi {
		return 0, nil
	}
	num := numeric.SafeSqrt(hi-t) * numeric.SafeSqrt(t-lo)

	return num / (2 * math.Pi) / q / t / sigma2, nil
}
