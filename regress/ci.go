// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regress

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/snakemath/statlab/sampling"
	"github.com/snakemath/statlab/stats"
)

// A CIResult carries confidence intervals for a simple regression's
// coefficients.
type CIResult struct {
	Fit       LinearResult
	Slope     sampling.ConfidenceInterval
	Intercept sampling.ConfidenceInterval
}

// ConfidenceIntervals fits (x, y) and returns confidence intervals
// for the slope and intercept at the given level.
//
// Critical values come from the t distribution with n-2 degrees of
// freedom at every sample size; there is no normal-approximation
// cutoff, so small-n intervals keep their nominal coverage.
func ConfidenceIntervals(x, y []float64, level float64) (CIResult, error) {
	if level <= 0 || level >= 1 || math.IsNaN(level) {
		return CIResult{}, fmt.Errorf("%w: confidence level %v", stats.ErrProbRange, level)
	}
	fit, err := Linear(x, y)
	if err != nil {
		return CIResult{}, err
	}

	meanX, _, sxx, _, _ := moments(x, y)
	n := float64(fit.N)
	seSlope := fit.StdErr / math.Sqrt(sxx)
	seIntercept := fit.StdErr * math.Sqrt(1/n+meanX*meanX/sxx)

	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 2}
	t := tdist.Quantile(1 - (1-level)/2)

	interval := func(point, se float64) sampling.ConfidenceInterval {
		moe := t * se
		return sampling.ConfidenceInterval{
			Lower:         point - moe,
			Upper:         point + moe,
			MarginOfError: moe,
			PointEstimate: point,
		}
	}
	return CIResult{
		Fit:       fit,
		Slope:     interval(fit.Slope, seSlope),
		Intercept: interval(fit.Intercept, seIntercept),
	}, nil
}
