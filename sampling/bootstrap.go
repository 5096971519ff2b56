// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampling

import (
	"fmt"
	"math/rand"

	"github.com/snakemath/statlab/stats"
)

// A BootstrapResult is the outcome of one bootstrap run. Statistics
// belongs exclusively to that run; a new run allocates a new slice.
type BootstrapResult struct {
	// OriginalStatistic is the statistic evaluated on the
	// original sample.
	OriginalStatistic float64

	// Statistics holds the statistic of each resample; its length
	// is the requested iteration count.
	Statistics []float64

	// StdErr is the empirical standard error: the standard
	// deviation of Statistics.
	StdErr float64

	// CI is the percentile confidence interval: the (α/2, 1-α/2)
	// quantiles of Statistics, with the original statistic as the
	// point estimate. The bounds come from the resampling
	// distribution, not from a margin around the point estimate, so
	// for strongly skewed statistics the interval need not contain
	// OriginalStatistic.
	CI ConfidenceInterval
}

// Bootstrap estimates the sampling distribution of statistic by
// resampling sample with replacement iterations times.
//
// The percentile interval makes no parametric assumptions, so it is
// usable for statistics (medians, trimmed means) whose sampling
// distribution has no closed form.
func Bootstrap(sample []float64, iterations int, statistic func([]float64) float64, level float64, r *rand.Rand) (*BootstrapResult, error) {
	if len(sample) < 2 {
		return nil, fmt.Errorf("%w: %d values to resample", stats.ErrSampleSize, len(sample))
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: %d bootstrap iterations", stats.ErrInvalidParams, iterations)
	}
	if level <= 0 || level >= 1 {
		return nil, fmt.Errorf("%w: confidence level %v", stats.ErrProbRange, level)
	}

	resample := make([]float64, len(sample))
	statistics := make([]float64, iterations)
	for i := range statistics {
		for j := range resample {
			resample[j] = sample[intn(r, len(sample))]
		}
		statistics[i] = statistic(resample)
	}

	boot := stats.Sample{Xs: statistics}
	boot.Sort()
	alpha := 1 - level
	lower := boot.Quantile(alpha / 2)
	upper := boot.Quantile(1 - alpha/2)
	point := statistic(sample)
	return &BootstrapResult{
		OriginalStatistic: point,
		Statistics:        boot.Xs,
		StdErr:            boot.StdDev(),
		CI: ConfidenceInterval{
			Lower:         lower,
			Upper:         upper,
			MarginOfError: (upper - lower) / 2,
			PointEstimate: point,
		},
	}, nil
}
