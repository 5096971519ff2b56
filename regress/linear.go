// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regress

import (
	"fmt"
	"math"

	"github.com/snakemath/statlab/stats"
)

// A LinearResult is an ordinary least squares fit of y = Slope·x +
// Intercept.
type LinearResult struct {
	Slope     float64
	Intercept float64

	// StdErr is the residual standard error, √(SSR/(n-2)).
	StdErr float64

	// R2 is the coefficient of determination. For simple linear
	// regression it equals the squared Pearson correlation.
	R2 float64

	// N is the number of observations the fit used.
	N int
}

// Linear fits a simple linear regression by ordinary least squares:
// Slope = Sxy/Sxx, Intercept = ȳ - Slope·x̄.
//
// It fails with ErrSampleSize for fewer than three pairs (a
// meaningful standard error needs a residual degree of freedom) and
// ErrDegenerate when x has zero variance (a vertical line has no
// defined slope).
func Linear(x, y []float64) (LinearResult, error) {
	if err := checkPaired(x, y, 3); err != nil {
		return LinearResult{}, err
	}
	meanX, meanY, sxx, syy, sxy := moments(x, y)
	if sxx == 0 {
		return LinearResult{}, fmt.Errorf("%w: x has zero variance", stats.ErrDegenerate)
	}

	res := LinearResult{N: len(x)}
	res.Slope = sxy / sxx
	res.Intercept = meanY - res.Slope*meanX

	ssr := 0.0
	for i := range x {
		d := y[i] - res.Predict(x[i])
		ssr += d * d
	}
	res.StdErr = math.Sqrt(ssr / float64(len(x)-2))
	if syy == 0 {
		// All y equal: the fit is exact and R² is
		// conventionally 1.
		res.R2 = 1
	} else {
		res.R2 = 1 - ssr/syy
	}
	return res, nil
}

// Predict returns the fitted value at x.
func (l LinearResult) Predict(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Residuals returns y[i] - ŷ[i] for the least squares fit of (x, y).
func Residuals(x, y []float64) ([]float64, error) {
	fit, err := Linear(x, y)
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(x))
	for i := range x {
		res[i] = y[i] - fit.Predict(x[i])
	}
	return res, nil
}

// A ResidualAnalysis summarizes a fit's residuals.
type ResidualAnalysis struct {
	// Mean is the mean residual. Least squares forces this to
	// (numerically) zero; a visibly nonzero mean indicates a
	// broken fit.
	Mean float64

	// StdDev is the residual standard deviation.
	StdDev float64

	// Min and Max bound the residuals.
	Min, Max float64

	// MaxAbsIndex is the index of the largest-magnitude residual,
	// the first observation to inspect when the fit looks off.
	MaxAbsIndex int
}

// AnalyzeResiduals fits (x, y) and summarizes the residuals.
func AnalyzeResiduals(x, y []float64) (ResidualAnalysis, error) {
	resid, err := Residuals(x, y)
	if err != nil {
		return ResidualAnalysis{}, err
	}
	s := stats.Sample{Xs: resid}
	min, max := s.Bounds()
	a := ResidualAnalysis{
		Mean:   s.Mean(),
		StdDev: s.StdDev(),
		Min:    min,
		Max:    max,
	}
	for i, r := range resid {
		if math.Abs(r) > math.Abs(resid[a.MaxAbsIndex]) {
			a.MaxAbsIndex = i
		}
	}
	return a, nil
}
