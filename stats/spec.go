// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"math/rand"
)

// Family identifies one of the supported distribution families.
type Family int

const (
	Normal Family = iota
	Binomial
	Poisson
	Exponential
	Uniform
)

func (f Family) String() string {
	switch f {
	case Normal:
		return "normal"
	case Binomial:
		return "binomial"
	case Poisson:
		return "poisson"
	case Exponential:
		return "exponential"
	case Uniform:
		return "uniform"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// A DistributionSpec is a tagged description of a distribution: a
// Family plus that family's parameters. Specs are plain values that
// round-trip through primitive numbers (URL parameters, JSON), so
// every engine operation validates the spec before computing rather
// than trusting the caller.
//
// Only the fields for the spec's family are meaningful; the
// constructors below set exactly those fields.
type DistributionSpec struct {
	Family Family

	// Mu and Sigma are the normal mean and standard deviation.
	// Sigma > 0.
	Mu, Sigma float64

	// N and P are the binomial trial count and success
	// probability. N >= 0, 0 <= P <= 1.
	N int
	P float64

	// Lambda is the Poisson or exponential rate. Lambda > 0.
	Lambda float64

	// A and B are the uniform bounds. A < B.
	A, B float64
}

// NewNormal returns a normal distribution spec.
func NewNormal(mu, sigma float64) DistributionSpec {
	return DistributionSpec{Family: Normal, Mu: mu, Sigma: sigma}
}

// NewBinomial returns a binomial distribution spec.
func NewBinomial(n int, p float64) DistributionSpec {
	return DistributionSpec{Family: Binomial, N: n, P: p}
}

// NewPoisson returns a Poisson distribution spec.
func NewPoisson(lambda float64) DistributionSpec {
	return DistributionSpec{Family: Poisson, Lambda: lambda}
}

// NewExponential returns an exponential distribution spec.
func NewExponential(lambda float64) DistributionSpec {
	return DistributionSpec{Family: Exponential, Lambda: lambda}
}

// NewUniform returns a uniform distribution spec on [a, b].
func NewUniform(a, b float64) DistributionSpec {
	return DistributionSpec{Family: Uniform, A: a, B: b}
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// IsValid reports whether s's parameters satisfy its family's
// constraints. Parameters must also be finite; specs often arrive
// from URL state, so NaN and Inf are rejected here rather than
// surfacing as NaN deep inside a formula.
func (s DistributionSpec) IsValid() bool {
	switch s.Family {
	case Normal:
		return finite(s.Mu, s.Sigma) && s.Sigma > 0
	case Binomial:
		return finite(s.P) && s.N >= 0 && 0 <= s.P && s.P <= 1
	case Poisson, Exponential:
		return finite(s.Lambda) && s.Lambda > 0
	case Uniform:
		return finite(s.A, s.B) && s.A < s.B
	}
	// Unknown family tags are rejected here, at the validity
	// boundary, so the dispatch switches below can treat the tag
	// as exhaustive.
	return false
}

func (s DistributionSpec) check() error {
	if !s.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidParams, s)
	}
	return nil
}

func (s DistributionSpec) String() string {
	switch s.Family {
	case Normal:
		return fmt.Sprintf("normal(μ=%v, σ=%v)", s.Mu, s.Sigma)
	case Binomial:
		return fmt.Sprintf("binomial(n=%v, p=%v)", s.N, s.P)
	case Poisson:
		return fmt.Sprintf("poisson(λ=%v)", s.Lambda)
	case Exponential:
		return fmt.Sprintf("exponential(λ=%v)", s.Lambda)
	case Uniform:
		return fmt.Sprintf("uniform(a=%v, b=%v)", s.A, s.B)
	}
	return fmt.Sprintf("unknown family %d", int(s.Family))
}

// Discrete reports whether s's family has integer support.
func (s DistributionSpec) Discrete() bool {
	return s.Family == Binomial || s.Family == Poisson
}

// Continuous returns the concrete continuous distribution for s, or
// an error if s is invalid or discrete.
func (s DistributionSpec) Continuous() (Dist, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	switch s.Family {
	case Normal:
		return NormalDist{Mu: s.Mu, Sigma: s.Sigma}, nil
	case Exponential:
		return ExponentialDist{Lambda: s.Lambda}, nil
	case Uniform:
		return UniformDist{A: s.A, B: s.B}, nil
	}
	return nil, fmt.Errorf("%w: %s is discrete", ErrInvalidParams, s.Family)
}

// DiscreteDist returns the concrete discrete distribution for s, or
// an error if s is invalid or continuous.
func (s DistributionSpec) DiscreteDist() (DiscreteDist, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	switch s.Family {
	case Binomial:
		return BinomialDist{N: s.N, P: s.P}, nil
	case Poisson:
		return PoissonDist{Lambda: s.Lambda}, nil
	}
	return nil, fmt.Errorf("%w: %s is continuous", ErrInvalidParams, s.Family)
}

// PDF returns the probability density of s at x for continuous
// families, or the probability mass at x for discrete families.
// Discrete families evaluated at a non-integer x have no mass there,
// so the result is 0 rather than an error.
func (s DistributionSpec) PDF(x float64) (float64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	if s.Discrete() {
		if x != math.Trunc(x) {
			return 0, nil
		}
		d, _ := s.DiscreteDist()
		return d.PMF(x), nil
	}
	d, _ := s.Continuous()
	return d.PDF(x), nil
}

// CDF returns P(X <= x) under s.
func (s DistributionSpec) CDF(x float64) (float64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	if s.Discrete() {
		d, _ := s.DiscreteDist()
		return d.CDF(x), nil
	}
	d, _ := s.Continuous()
	return d.CDF(x), nil
}

// Quantile returns the inverse CDF of s at p. For discrete families
// this is the smallest integer k with CDF(k) >= p. For families with
// unbounded support, p=0 and p=1 return -Inf or +Inf; callers that
// need a finite plotting value should clamp to SuggestedRange.
func (s DistributionSpec) Quantile(p float64) (float64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return 0, fmt.Errorf("%w: p=%v", ErrProbRange, p)
	}
	if s.Discrete() {
		d, _ := s.DiscreteDist()
		return d.InvCDF(p), nil
	}
	d, _ := s.Continuous()
	return d.InvCDF(p), nil
}

// Samples draws count independent samples from s using r as the
// source of randomness, or the global source if r is nil.
func (s DistributionSpec) Samples(count int, r *rand.Rand) ([]float64, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: count=%d", ErrInvalidParams, count)
	}
	var gen interface {
		Rand(*rand.Rand) float64
	}
	if s.Discrete() {
		gen, _ = s.DiscreteDist()
	} else {
		gen, _ = s.Continuous()
	}
	xs := make([]float64, count)
	for i := range xs {
		xs[i] = gen.Rand(r)
	}
	return xs, nil
}

// DistStats summarizes a distribution's shape in closed form.
type DistStats struct {
	Mean     float64
	Variance float64
	StdDev   float64

	// Modes lists the distribution's modes. Binomial and Poisson
	// distributions can have two; the uniform distribution has no
	// distinguished mode, so Modes is empty.
	Modes []float64

	Skewness float64
}

// Stats returns the closed-form summary statistics of s.
func (s DistributionSpec) Stats() (DistStats, error) {
	if err := s.check(); err != nil {
		return DistStats{}, err
	}
	var st DistStats
	switch s.Family {
	case Normal:
		st = DistStats{
			Mean:     s.Mu,
			Variance: s.Sigma * s.Sigma,
			Modes:    []float64{s.Mu},
			Skewness: 0,
		}
	case Binomial:
		d := BinomialDist{N: s.N, P: s.P}
		st = DistStats{
			Mean:     d.Mean(),
			Variance: d.Variance(),
			Modes:    binomialModes(s.N, s.P),
			Skewness: binomialSkew(s.N, s.P),
		}
	case Poisson:
		st = DistStats{
			Mean:     s.Lambda,
			Variance: s.Lambda,
			Modes:    poissonModes(s.Lambda),
			Skewness: 1 / math.Sqrt(s.Lambda),
		}
	case Exponential:
		st = DistStats{
			Mean:     1 / s.Lambda,
			Variance: 1 / (s.Lambda * s.Lambda),
			Modes:    []float64{0},
			Skewness: 2,
		}
	case Uniform:
		w := s.B - s.A
		st = DistStats{
			Mean:     (s.A + s.B) / 2,
			Variance: w * w / 12,
			Modes:    nil,
			Skewness: 0,
		}
	}
	st.StdDev = math.Sqrt(st.Variance)
	return st, nil
}

func binomialModes(n int, p float64) []float64 {
	switch {
	case p == 0:
		return []float64{0}
	case p == 1:
		return []float64{float64(n)}
	}
	m := float64(n+1) * p
	if m == math.Floor(m) && m >= 1 && m <= float64(n) {
		// (n+1)p integral: mass is equal at m-1 and m.
		return []float64{m - 1, m}
	}
	return []float64{math.Floor(m)}
}

func binomialSkew(n int, p float64) float64 {
	v := float64(n) * p * (1 - p)
	if v == 0 {
		return 0
	}
	return (1 - 2*p) / math.Sqrt(v)
}

func poissonModes(lambda float64) []float64 {
	if lambda == math.Floor(lambda) {
		// Integral rate: mass is equal at λ-1 and λ.
		return []float64{lambda - 1, lambda}
	}
	return []float64{math.Floor(lambda)}
}

// SuggestedRange returns a plotting domain that contains nearly all
// of s's probability mass. This is a presentation heuristic, not a
// support bound.
func (s DistributionSpec) SuggestedRange() (lo, hi float64, err error) {
	if err := s.check(); err != nil {
		return 0, 0, err
	}
	switch s.Family {
	case Uniform:
		// Pad so the density's edges are visible.
		pad := (s.B - s.A) * 0.1
		return s.A - pad, s.B + pad, nil
	case Binomial:
		return 0, float64(s.N), nil
	}
	var b interface{ Bounds() (float64, float64) }
	if s.Discrete() {
		b, _ = s.DiscreteDist()
	} else {
		b, _ = s.Continuous()
	}
	lo, hi = b.Bounds()
	return lo, hi, nil
}
