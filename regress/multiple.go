// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regress

import (
	"fmt"
	"math"

	"github.com/snakemath/statlab/stats"
)

// A Multiple2Result is a least squares fit of ŷ = B0 + B1·x1 + B2·x2.
type Multiple2Result struct {
	B0, B1, B2 float64

	// R2 is the coefficient of determination; AdjR2 penalizes it
	// for the two predictors: 1 - (1-R²)(n-1)/(n-p-1).
	R2    float64
	AdjR2 float64

	N int
}

// Multiple2 fits a two-predictor linear regression by solving the
// 3×3 normal equations XᵀXβ = Xᵀy.
//
// It fails with ErrSampleSize for fewer than four observations (one
// residual degree of freedom past the three parameters) and
// ErrDegenerate when the predictors are collinear.
func Multiple2(x1, x2, y []float64) (Multiple2Result, error) {
	if len(x1) != len(x2) || len(x1) != len(y) {
		return Multiple2Result{}, fmt.Errorf("%w: predictor lengths %d, %d and response length %d",
			stats.ErrInvalidParams, len(x1), len(x2), len(y))
	}
	if len(y) < 4 {
		return Multiple2Result{}, fmt.Errorf("%w: %d observations, need at least 4",
			stats.ErrSampleSize, len(y))
	}
	if err := checkFinite(x1, x2, y); err != nil {
		return Multiple2Result{}, err
	}

	n := float64(len(y))
	var s1, s2, sy, s11, s22, s12, s1y, s2y float64
	for i := range y {
		s1 += x1[i]
		s2 += x2[i]
		sy += y[i]
		s11 += x1[i] * x1[i]
		s22 += x2[i] * x2[i]
		s12 += x1[i] * x2[i]
		s1y += x1[i] * y[i]
		s2y += x2[i] * y[i]
	}

	a := [3][4]float64{
		{n, s1, s2, sy},
		{s1, s11, s12, s1y},
		{s2, s12, s22, s2y},
	}
	beta, ok := solve3(a)
	if !ok {
		return Multiple2Result{}, fmt.Errorf("%w: predictors are collinear", stats.ErrDegenerate)
	}

	res := Multiple2Result{B0: beta[0], B1: beta[1], B2: beta[2], N: len(y)}

	meanY := sy / n
	var ssr, sst float64
	for i := range y {
		fit := res.B0 + res.B1*x1[i] + res.B2*x2[i]
		ssr += (y[i] - fit) * (y[i] - fit)
		sst += (y[i] - meanY) * (y[i] - meanY)
	}
	if sst == 0 {
		res.R2 = 1
	} else {
		res.R2 = 1 - ssr/sst
	}
	const p = 2
	res.AdjR2 = 1 - (1-res.R2)*(n-1)/(n-float64(p)-1)
	return res, nil
}

// Predict returns the fitted value at (x1, x2).
func (m Multiple2Result) Predict(x1, x2 float64) float64 {
	return m.B0 + m.B1*x1 + m.B2*x2
}

// solve3 solves a 3×3 linear system given as an augmented matrix,
// using Gaussian elimination with partial pivoting. It reports false
// if the system is singular.
func solve3(a [3][4]float64) ([3]float64, bool) {
	const eps = 1e-12
	for col := 0; col < 3; col++ {
		// Pivot on the largest remaining entry in this column.
		pivot := col
		for row := col + 1; row < 3; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < eps {
			return [3]float64{}, false
		}
		a[col], a[pivot] = a[pivot], a[col]

		for row := col + 1; row < 3; row++ {
			f := a[row][col] / a[col][col]
			for k := col; k < 4; k++ {
				a[row][k] -= f * a[col][k]
			}
		}
	}

	var x [3]float64
	for row := 2; row >= 0; row-- {
		sum := a[row][3]
		for k := row + 1; k < 3; k++ {
			sum -= a[row][k] * x[k]
		}
		x[row] = sum / a[row][row]
	}
	return x, true
}
