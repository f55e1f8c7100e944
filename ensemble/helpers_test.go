// SPDX-License-Identifier: MIT

package ensemble_test

import "github.com/katalvlaran/rmt/ensemble"

// countingSource returns 1, 2, 3, ... and records how many values were drawn.
type countingSource struct{ draws int }

func (c *countingSource) NextGaussian() float64 {
	c.draws++
	return float64(c.draws)
}

var _ ensemble.Source = (*countingSource)(nil)

// seedDet is the fixed seed used by determinism tests.
const seedDet uint64 = 20240611
