// SPDX-License-Identifier: MIT

package density

import (
	"fmt"

	"github.com/katalvlaran/rmt/numeric"
)

// ErrDomain is returned for non-positive or non-finite law parameters, a NaN
// evaluation point, or a real Stieltjes argument.
var ErrDomain = numeric.ErrDomain

// Operation tags.
const (
	opMPDensity     = "MarchenkoPasturDensity"
	opMPSupport     = "MarchenkoPasturSupport"
	opMPCDF         = "MarchenkoPasturCDF"
	opMPStieltjes   = "MarchenkoPasturStieltjes"
	opWigner        = "WignerSemicircleDensity"
	opWignerCDF     = "WignerSemicircleCDF"
	opWignerStielt  = "WignerSemicircleStieltjes"
	opSemicircleRad = "SemicircleRadius"
)

// domainErrorf reports ErrDomain for the named parameter under an op tag,
// e.g. "MarchenkoPasturDensity: q=-1: rmt: argument outside domain".
func domainErrorf(op, param string, v any) error {
	return fmt.Errorf("%s: %s=%v: %w", op, param, v, ErrDomain)
}
