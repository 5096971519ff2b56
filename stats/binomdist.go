// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"

	"github.com/snakemath/statlab/mathx"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	return mathx.Choose(d.N, ki) * math.Pow(d.P, float64(ki)) * math.Pow(1-d.P, float64(d.N-ki))
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 0
	} else if ki >= d.N {
		return 1
	}

	return mathx.BetaInc(1-d.P, float64(d.N-ki), k+1)
}

// InvCDF returns the smallest number of successes k such that
// CDF(k) >= p. It returns NaN outside [0, 1].
func (d BinomialDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	} else if p == 0 {
		return 0
	} else if p == 1 {
		return float64(d.N)
	}

	// The CDF is monotone in k, so binary search for the
	// smallest k with CDF(k) >= p.
	lo, hi := 0, d.N
	for lo < hi {
		mid := (lo + hi) / 2
		if d.CDF(float64(mid)) >= p {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return float64(lo)
}

// Rand counts successes in d.N Bernoulli trials driven by r, or by
// the global source if r is nil.
func (d BinomialDist) Rand(r *rand.Rand) float64 {
	uniform := rand.Float64
	if r != nil {
		uniform = r.Float64
	}
	k := 0
	for i := 0; i < d.N; i++ {
		if uniform() < d.P {
			k++
		}
	}
	return float64(k)
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}
