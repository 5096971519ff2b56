// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// Sample is a collection of possibly repeated measurements.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Sum returns the sum of the sample values.
func (s Sample) Sum() float64 {
	sum := 0.0
	for _, x := range s.Xs {
		sum += x
	}
	return sum
}

// Weight returns the number of values in the sample as a float64.
func (s Sample) Weight() float64 {
	return float64(len(s.Xs))
}

// Mean returns the arithmetic mean of the sample, or NaN if the
// sample is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return s.Sum() / float64(len(s.Xs))
}

// GeoMean returns the geometric mean of the sample. It returns NaN if
// the sample is empty or contains a non-positive value.
func (s Sample) GeoMean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	logSum := 0.0
	for _, x := range s.Xs {
		if x <= 0 {
			return nan
		}
		logSum += math.Log(x)
	}
	return math.Exp(logSum / float64(len(s.Xs)))
}

// Variance returns the sample variance (with Bessel's correction), or
// NaN if the sample has fewer than two values.
func (s Sample) Variance() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	mean := s.Mean()
	ss := 0.0
	for _, x := range s.Xs {
		d := x - mean
		ss += d * d
	}
	return ss / float64(len(s.Xs)-1)
}

// StdDev returns the sample standard deviation.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Bounds returns the minimum and maximum values of the sample, or
// (NaN, NaN) if the sample is empty.
func (s Sample) Bounds() (min, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	min, max = s.Xs[0], s.Xs[0]
	for _, x := range s.Xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

// Quantile returns the q'th sample quantile using the median-unbiased
// estimator (Hyndman and Fan's R8 definition). q outside [0, 1] is
// clamped to the sample bounds. It returns NaN if the sample is
// empty.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	xs := s.Xs
	if !s.Sorted {
		xs = append([]float64(nil), s.Xs...)
		sort.Float64s(xs)
	}

	n := float64(len(xs))
	h := (n+1.0/3)*q + 1.0/3
	if h < 1 {
		return xs[0]
	} else if h >= n {
		return xs[len(xs)-1]
	}
	fl := math.Floor(h)
	i := int(fl) - 1
	return xs[i] + (h-fl)*(xs[i+1]-xs[i])
}

// Percentile is Quantile with p expressed in [0, 1].
func (s Sample) Percentile(p float64) float64 {
	return s.Quantile(p)
}

// IQR returns the interquartile range of the sample.
func (s Sample) IQR() float64 {
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	return s.Quantile(0.75) - s.Quantile(0.25)
}

// Copy returns a copy of the Sample with a fresh Xs slice.
func (s *Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}

// Sort sorts the sample in place and returns it for chaining.
func (s *Sample) Sort() *Sample {
	if !s.Sorted && !sort.Float64sAreSorted(s.Xs) {
		sort.Float64s(s.Xs)
	}
	s.Sorted = true
	return s
}
