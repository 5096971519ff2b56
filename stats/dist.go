// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math/rand"

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x.
	CDF(x float64) float64

	// InvCDF returns the inverse of the CDF for p. That is,
	// InvCDF(CDF(x)) = x. The value of p must be in [0, 1].
	InvCDF(p float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)

	// Rand returns a random sample drawn from this distribution
	// using r as the source of randomness, or the global source
	// if r is nil.
	Rand(r *rand.Rand) float64
}

// A DiscreteDist is a discrete statistical distribution.
type DiscreteDist interface {
	// PMF returns the probability mass of this distribution at
	// int(k).
	PMF(k float64) float64

	// CDF returns the probability of a value less than or equal
	// to k.
	CDF(k float64) float64

	// InvCDF returns the smallest k in the support such that
	// CDF(k) >= p. The value of p must be in [0, 1].
	InvCDF(p float64) float64

	// Step returns the spacing between values in this
	// distribution's support.
	Step() float64

	// Bounds returns the bounds of this distribution's support.
	Bounds() (float64, float64)

	// Rand returns a random sample drawn from this distribution
	// using r as the source of randomness, or the global source
	// if r is nil.
	Rand(r *rand.Rand) float64
}
