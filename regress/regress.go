// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// regress implements Pearson correlation, ordinary least squares
// simple and two-predictor regression, residual and influence
// diagnostics, and synthetic correlated-data generation for
// SnakeMath's correlation explorer.
package regress // import "github.com/snakemath/statlab/regress"

import (
	"fmt"
	"math"

	"github.com/snakemath/statlab/stats"
)

// A Point is one (x, y) observation pair.
type Point struct {
	X, Y float64
}

// Coords splits a point sequence into parallel coordinate slices.
func Coords(points []Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return
}

// checkFinite rejects series containing NaN or Inf, which would
// otherwise propagate silently through the moment sums.
func checkFinite(series ...[]float64) error {
	for _, s := range series {
		for _, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: non-finite observation %v",
					stats.ErrInvalidParams, v)
			}
		}
	}
	return nil
}

// checkPaired validates that x and y form at least min finite paired
// observations.
func checkPaired(x, y []float64, min int) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d x values paired with %d y values",
			stats.ErrInvalidParams, len(x), len(y))
	}
	if len(x) < min {
		return fmt.Errorf("%w: %d observations, need at least %d",
			stats.ErrSampleSize, len(x), min)
	}
	return checkFinite(x, y)
}

// moments returns the means of x and y and the centered sums Sxx,
// Syy, and Sxy.
func moments(x, y []float64) (meanX, meanY, sxx, syy, sxy float64) {
	meanX = stats.Sample{Xs: x}.Mean()
	meanY = stats.Sample{Xs: y}.Mean()
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	return
}
