// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"

	"github.com/snakemath/statlab/mathx"
)

// PoissonDist is a Poisson distribution with rate Lambda > 0.
type PoissonDist struct {
	Lambda float64
}

// PMF is the probability of exactly int(k) events occurring in one
// interval at rate d.Lambda.
func (d PoissonDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 {
		return 0
	}
	// Evaluate in log space so large k and large Lambda don't
	// overflow the k! term.
	return math.Exp(float64(ki)*math.Log(d.Lambda) - d.Lambda - mathx.Lgamma(float64(ki)+1))
}

// CDF is the probability of int(k) or fewer events.
func (d PoissonDist) CDF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 {
		return 0
	}
	// One pass of the PMF recurrence p(i+1) = p(i)·λ/(i+1). The
	// scan costs the same as a single PMF sum, which is why
	// InvCDF below also scans rather than binary searching.
	p := math.Exp(-d.Lambda)
	sum := p
	for i := 0; i < ki; i++ {
		p *= d.Lambda / float64(i+1)
		sum += p
	}
	if sum > 1 {
		return 1
	}
	return sum
}

// InvCDF returns the smallest event count k such that CDF(k) >= p.
// It returns NaN outside [0, 1] and +Inf at p=1 (the support is
// unbounded above).
func (d PoissonDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	} else if p == 0 {
		return 0
	} else if p == 1 {
		return inf
	}

	pmf := math.Exp(-d.Lambda)
	sum := pmf
	k := 0
	// The accumulated mass reaches any p < 1 within a few
	// standard deviations above the mean; the cap only guards
	// against floating-point underflow of the recurrence.
	max := int(d.Lambda+10*math.Sqrt(d.Lambda)) + 50
	for sum < p && k < max {
		k++
		pmf *= d.Lambda / float64(k)
		sum += pmf
	}
	return float64(k)
}

// Rand draws an event count by inverting a uniform variate through
// the PMF recurrence.
func (d PoissonDist) Rand(r *rand.Rand) float64 {
	var u float64
	if r == nil {
		u = rand.Float64()
	} else {
		u = r.Float64()
	}
	return d.InvCDF(u)
}

func (d PoissonDist) Bounds() (float64, float64) {
	return 0, d.Lambda + 4*math.Sqrt(d.Lambda)
}

func (d PoissonDist) Step() float64 {
	return 1
}

func (d PoissonDist) Mean() float64 { return d.Lambda }

func (d PoissonDist) Variance() float64 { return d.Lambda }
