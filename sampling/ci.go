// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampling

import (
	"fmt"
	"math"

	"github.com/snakemath/statlab/stats"
)

// A ConfidenceInterval is an interval estimate paired with a point
// estimate. Upper - Lower == 2*MarginOfError always holds. Intervals
// built from a margin of error are centered on PointEstimate;
// percentile intervals from Bootstrap need not be.
type ConfidenceInterval struct {
	Lower         float64
	Upper         float64
	MarginOfError float64
	PointEstimate float64
}

// StandardErrorMean returns the standard error of a sample mean:
// stdDev / √n.
func StandardErrorMean(stdDev float64, n int) float64 {
	return stdDev / math.Sqrt(float64(n))
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// critZ returns the two-sided standard normal critical value for the
// given confidence level in (0, 1).
func critZ(level float64) (float64, error) {
	if math.IsNaN(level) || level <= 0 || level >= 1 {
		return 0, fmt.Errorf("%w: confidence level %v", stats.ErrProbRange, level)
	}
	return stats.StdNormal.InvCDF(1 - (1-level)/2), nil
}

// ConfidenceIntervalMean returns a confidence interval for a
// population mean from a sample mean, standard deviation, and size.
//
// The critical value is taken from the normal distribution at every
// n: the simulator works with populations whose σ is known. Small-n
// inference from an estimated σ belongs to the t-tests in hyptest.
func ConfidenceIntervalMean(mean, stdDev float64, n int, level float64) (ConfidenceInterval, error) {
	if n < 1 {
		return ConfidenceInterval{}, fmt.Errorf("%w: n=%d", stats.ErrSampleSize, n)
	}
	// Summary inputs often come straight from user data; a NaN
	// here would otherwise surface as a NaN interval.
	if !finite(mean) || !finite(stdDev) || stdDev < 0 {
		return ConfidenceInterval{}, fmt.Errorf("%w: mean %v, stddev %v",
			stats.ErrInvalidParams, mean, stdDev)
	}
	z, err := critZ(level)
	if err != nil {
		return ConfidenceInterval{}, err
	}
	moe := z * StandardErrorMean(stdDev, n)
	return ConfidenceInterval{
		Lower:         mean - moe,
		Upper:         mean + moe,
		MarginOfError: moe,
		PointEstimate: mean,
	}, nil
}

// SampleSizeMean returns the sample size needed to estimate a mean to
// within marginOfError at the given confidence level, assuming
// population standard deviation stdDev. The result is rounded up;
// this never under-provisions.
func SampleSizeMean(marginOfError, stdDev, level float64) (int, error) {
	if marginOfError <= 0 || stdDev <= 0 {
		return 0, fmt.Errorf("%w: margin %v, stddev %v",
			stats.ErrInvalidParams, marginOfError, stdDev)
	}
	z, err := critZ(level)
	if err != nil {
		return 0, err
	}
	q := z * stdDev / marginOfError
	return int(math.Ceil(q * q)), nil
}

// SampleSizeProportion returns the sample size needed to estimate a
// proportion near p to within marginOfError at the given confidence
// level. The result is rounded up. Use p=0.5 for the conservative
// worst case.
func SampleSizeProportion(marginOfError, p, level float64) (int, error) {
	if marginOfError <= 0 {
		return 0, fmt.Errorf("%w: margin %v", stats.ErrInvalidParams, marginOfError)
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return 0, fmt.Errorf("%w: p=%v", stats.ErrProbRange, p)
	}
	z, err := critZ(level)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(z * z * p * (1 - p) / (marginOfError * marginOfError))), nil
}
