// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regress

import (
	"fmt"

	"github.com/snakemath/statlab/stats"
)

// Leverage returns the leverage of observation i in a simple
// regression on x: h_i = 1/n + (x_i - x̄)²/Σ(x_j - x̄)².
//
// Leverages lie in (0, 1] and sum to 2 over a simple regression's
// observations (one per fitted parameter).
func Leverage(x []float64, i int) (float64, error) {
	if i < 0 || i >= len(x) {
		return 0, fmt.Errorf("%w: index %d of %d observations",
			stats.ErrInvalidParams, i, len(x))
	}
	if len(x) < 2 {
		return 0, fmt.Errorf("%w: %d observations", stats.ErrSampleSize, len(x))
	}
	if err := checkFinite(x); err != nil {
		return 0, err
	}
	mean := stats.Sample{Xs: x}.Mean()
	sxx := 0.0
	for _, xj := range x {
		d := xj - mean
		sxx += d * d
	}
	if sxx == 0 {
		return 0, fmt.Errorf("%w: x has zero variance", stats.ErrDegenerate)
	}
	d := x[i] - mean
	return 1/float64(len(x)) + d*d/sxx, nil
}

// CooksDistances returns Cook's distance for every observation of a
// simple linear regression:
//
//	D_i = r_i²/(p·MSE) · h_i/(1-h_i)²
//
// with p = 2 fitted parameters (slope and intercept).
func CooksDistances(x, y []float64) ([]float64, error) {
	fit, err := Linear(x, y)
	if err != nil {
		return nil, err
	}
	const p = 2
	mse := fit.StdErr * fit.StdErr

	ds := make([]float64, len(x))
	for i := range x {
		h, err := Leverage(x, i)
		if err != nil {
			return nil, err
		}
		r := y[i] - fit.Predict(x[i])
		if mse == 0 {
			// An exact fit has no residual scale; nothing is
			// influential.
			ds[i] = 0
			continue
		}
		ds[i] = r * r / (p * mse) * h / ((1 - h) * (1 - h))
	}
	return ds, nil
}

// DefaultOutlierFactor scales the conventional Cook's distance cutoff
// of 4/n.
const DefaultOutlierFactor = 1.0

// IdentifyOutliers returns the indices of observations whose Cook's
// distance exceeds factor·4/n, in ascending order. A factor of 0
// means DefaultOutlierFactor. The 4/n cutoff is a rule of thumb, not
// a significance test.
func IdentifyOutliers(x, y []float64, factor float64) ([]int, error) {
	if factor == 0 {
		factor = DefaultOutlierFactor
	}
	if factor < 0 {
		return nil, fmt.Errorf("%w: threshold factor %v", stats.ErrInvalidParams, factor)
	}
	ds, err := CooksDistances(x, y)
	if err != nil {
		return nil, err
	}
	cutoff := factor * 4 / float64(len(x))
	var out []int
	for i, d := range ds {
		if d > cutoff {
			out = append(out, i)
		}
	}
	return out, nil
}
