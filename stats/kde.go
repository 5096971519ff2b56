// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"
)

// KDE represents options for constructing a Gaussian kernel density
// estimate: a smooth estimate ƒ̂(x) of the unknown distribution a
// sample was drawn from. The widgets overlay it on histograms of
// empirical samples.
//
// The zero value of KDE (beyond Sample) is a reasonable default
// configuration.
type KDE struct {
	// Sample is the data to estimate the density of.
	Sample Sample

	// Bandwidth is the kernel bandwidth. If it is zero, the
	// bandwidth is estimated from the sample using BandwidthScott.
	Bandwidth float64
}

// BandwidthSilverman estimates a kernel bandwidth using Silverman's
// Rule of Thumb. It is fast but not robust to outliers, as it
// assumes the data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(s Sample) float64 {
	return 1.06 * s.StdDev() * math.Pow(s.Weight(), -1.0/5)
}

// BandwidthScott estimates a kernel bandwidth using Scott's Rule: the
// smaller of the sample standard deviation and IQR/1.349, a robust
// estimator of a Gaussian's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(s Sample) float64 {
	hScale := 1.06 * math.Pow(s.Weight(), -1.0/5)
	stdDev := s.StdDev()
	if iqr := s.IQR(); stdDev > iqr/1.349 {
		stdDev = iqr / 1.349
	}
	return hScale * stdDev
}

// Dist returns the distribution of the kernel density estimate for
// k.Sample.
func (k KDE) Dist() Dist {
	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(k.Sample)
	}
	if h <= 0 || math.IsNaN(h) {
		// Degenerate sample (constant or too small). Fall back
		// to a token bandwidth so the estimate stays a valid
		// distribution.
		h = 1
	}
	return &kdeDist{xs: k.Sample.Xs, h: h}
}

type kdeDist struct {
	xs []float64
	h  float64
}

// PDF evaluates one unshifted kernel at x - xi for each xi and
// averages, which is equivalent to averaging kernels centered on each
// sample point.
func (kde *kdeDist) PDF(x float64) float64 {
	kernel := NormalDist{0, kde.h}
	sum := 0.0
	for _, xi := range kde.xs {
		sum += kernel.PDF(x - xi)
	}
	return sum / float64(len(kde.xs))
}

func (kde *kdeDist) CDF(x float64) float64 {
	kernel := NormalDist{0, kde.h}
	sum := 0.0
	for _, xi := range kde.xs {
		sum += kernel.CDF(x - xi)
	}
	return sum / float64(len(kde.xs))
}

func (kde *kdeDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	} else if p == 0 {
		return -inf
	} else if p == 1 {
		return inf
	}
	lo, hi := kde.Bounds()
	// The CDF limits to 0 and 1 outside Bounds, so bracket p
	// before bisecting.
	for kde.CDF(lo) > p {
		lo -= hi - lo
	}
	for kde.CDF(hi) < p {
		hi += hi - lo
	}
	const tolerance = 1e-9
	for hi-lo > tolerance {
		mid := (lo + hi) / 2
		if kde.CDF(mid) < p {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// Rand draws from the estimate by picking a sample point and adding
// kernel noise (a smoothed bootstrap draw).
func (kde *kdeDist) Rand(r *rand.Rand) float64 {
	var i int
	if r == nil {
		i = rand.Intn(len(kde.xs))
	} else {
		i = r.Intn(len(kde.xs))
	}
	return kde.xs[i] + NormalDist{0, kde.h}.Rand(r)
}

func (kde *kdeDist) Bounds() (float64, float64) {
	lo, hi := Sample{Xs: kde.xs}.Bounds()
	// Kernels centered on the extreme points carry essentially
	// all of their weight within 4h.
	return lo - 4*kde.h, hi + 4*kde.h
}
