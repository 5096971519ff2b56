// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"
)

// ExponentialDist is an exponential distribution with rate Lambda > 0.
type ExponentialDist struct {
	Lambda float64
}

func (d ExponentialDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.Lambda * math.Exp(-d.Lambda*x)
}

func (d ExponentialDist) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return 1 - math.Exp(-d.Lambda*x)
}

// InvCDF returns the inverse CDF of d at p. It returns +Inf at p=1
// (the support is unbounded above) and NaN outside [0, 1].
func (d ExponentialDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	} else if p == 1 {
		return inf
	}
	return -math.Log(1-p) / d.Lambda
}

func (d ExponentialDist) Rand(r *rand.Rand) float64 {
	var x float64
	if r == nil {
		x = rand.ExpFloat64()
	} else {
		x = r.ExpFloat64()
	}
	return x / d.Lambda
}

func (d ExponentialDist) Bounds() (float64, float64) {
	// 1-CDF(6/λ) = e⁻⁶ ≈ 0.0025.
	return 0, 6 / d.Lambda
}

func (d ExponentialDist) Mean() float64 { return 1 / d.Lambda }

func (d ExponentialDist) Variance() float64 { return 1 / (d.Lambda * d.Lambda) }
