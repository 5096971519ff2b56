// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyptest

import (
	"fmt"
	"math"

	"github.com/snakemath/statlab/stats"
)

func checkAlpha(alpha float64) error {
	if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
		return fmt.Errorf("%w: significance level %v", stats.ErrProbRange, alpha)
	}
	return nil
}

// Power returns the statistical power of a two-sided, two-sample mean
// comparison with n observations per group, a true standardized
// effect of effectSize (Cohen's d), and significance level alpha.
//
// The alternative distribution of the test statistic is approximated
// by a normal shifted to |d|·√(n/2); the vanishing probability of
// rejecting on the wrong side is dropped.
func Power(effectSize float64, n int, alpha float64) (float64, error) {
	if err := checkAlpha(alpha); err != nil {
		return 0, err
	}
	if n < 2 {
		return 0, fmt.Errorf("%w: n=%d per group", stats.ErrSampleSize, n)
	}
	zCrit := stats.StdNormal.InvCDF(1 - alpha/2)
	shift := math.Abs(effectSize) * math.Sqrt(float64(n)/2)
	return stats.StdNormal.CDF(shift - zCrit), nil
}

// SampleSizeForPower returns the per-group sample size needed for a
// two-sided, two-sample mean comparison to reach the given power at
// significance level alpha, for a true effect of effectSize:
//
//	n = 2·((z_{α/2} + z_β)/d)²
//
// rounded up.
func SampleSizeForPower(effectSize, power, alpha float64) (int, error) {
	if err := checkAlpha(alpha); err != nil {
		return 0, err
	}
	if math.IsNaN(power) || power <= 0 || power >= 1 {
		return 0, fmt.Errorf("%w: power %v", stats.ErrProbRange, power)
	}
	if effectSize == 0 || math.IsNaN(effectSize) {
		return 0, fmt.Errorf("%w: zero effect size", stats.ErrDegenerate)
	}
	zAlpha := stats.StdNormal.InvCDF(1 - alpha/2)
	zBeta := stats.StdNormal.InvCDF(power)
	q := (zAlpha + zBeta) / math.Abs(effectSize)
	return int(math.Ceil(2 * q * q)), nil
}
