// SPDX-License-Identifier: MIT

package ensemble

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rmt/numeric"
)

var (
	// ErrInvalidDimension is returned when a requested matrix size is < 1.
	ErrInvalidDimension = numeric.ErrInvalidDimension

	// ErrNilSource is returned when a sampler receives a nil Source.
	ErrNilSource = errors.New("ensemble: nil random source")
)

// Operation tags.
const (
	opWishart           = "SampleWishart"
	opWishartNormalized = "SampleWishartNormalized"
	opGOE               = "SampleGOE"
	opGOENormalized     = "SampleGOENormalized"
	opWishartRatio      = "WishartRatio"
)

func ensembleErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
