// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hyptest implements the hypothesis tests behind SnakeMath's
// inference widgets: one- and two-sample t-tests, proportion z-tests,
// power and required-sample-size calculations, and standardized
// effect sizes.
package hyptest // import "github.com/snakemath/statlab/hyptest"

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/snakemath/statlab/sampling"
	"github.com/snakemath/statlab/stats"
)

// A TTestResult is the result of a one- or two-sample t-test.
type TTestResult struct {
	// N1 and N2 are the sizes of the input samples. N2 is 0 for a
	// one-sample test.
	N1, N2 int

	// T is the value of the t-statistic.
	T float64

	// DF is the degrees of freedom of the reference t
	// distribution. For the two-sample test this is the
	// Welch-Satterthwaite approximation and generally not an
	// integer.
	DF float64

	// P is the two-tailed p-value.
	P float64

	// CI is a confidence interval for the mean (one-sample) or
	// the difference of means (two-sample) at the level the test
	// was run with.
	CI sampling.ConfidenceInterval
}

// tResult finishes a t-test given the point estimate, its standard
// error, and the degrees of freedom.
func tResult(point, mu0, se, df, level float64) TTestResult {
	t := (point - mu0) / se
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * dist.CDF(-math.Abs(t))
	moe := dist.Quantile(1-(1-level)/2) * se
	return TTestResult{
		T:  t,
		DF: df,
		P:  p,
		CI: sampling.ConfidenceInterval{
			Lower:         point - moe,
			Upper:         point + moe,
			MarginOfError: moe,
			PointEstimate: point,
		},
	}
}

func checkLevel(level float64) error {
	if math.IsNaN(level) || level <= 0 || level >= 1 {
		return fmt.Errorf("%w: confidence level %v", stats.ErrProbRange, level)
	}
	return nil
}

// OneSampleTTest tests the null hypothesis that sample was drawn from
// a population with mean mu0 against the two-sided alternative. level
// sets the confidence level of the returned interval for the mean.
//
// It fails with ErrSampleSize for fewer than two values and
// ErrDegenerate when every value is equal (the statistic has no
// scale).
func OneSampleTTest(sample []float64, mu0, level float64) (*TTestResult, error) {
	if err := checkLevel(level); err != nil {
		return nil, err
	}
	if len(sample) < 2 {
		return nil, fmt.Errorf("%w: %d values", stats.ErrSampleSize, len(sample))
	}
	s := stats.Sample{Xs: sample}
	sd := s.StdDev()
	if sd == 0 {
		return nil, fmt.Errorf("%w: all sample values are equal", stats.ErrDegenerate)
	}
	n := float64(len(sample))
	res := tResult(s.Mean(), mu0, sd/math.Sqrt(n), n-1, level)
	res.N1 = len(sample)
	return &res, nil
}

// TwoSampleTTest performs Welch's t-test of the null hypothesis that
// a and b have equal population means against the two-sided
// alternative. Welch's form does not assume equal variances, which
// makes it the safer default for samples of different spread.
//
// The returned interval covers the difference mean(a) - mean(b).
func TwoSampleTTest(a, b []float64, level float64) (*TTestResult, error) {
	if err := checkLevel(level); err != nil {
		return nil, err
	}
	if len(a) < 2 || len(b) < 2 {
		return nil, fmt.Errorf("%w: %d and %d values", stats.ErrSampleSize, len(a), len(b))
	}
	sa, sb := stats.Sample{Xs: a}, stats.Sample{Xs: b}
	va, vb := sa.Variance(), sb.Variance()
	if va == 0 && vb == 0 {
		return nil, fmt.Errorf("%w: both samples are constant", stats.ErrDegenerate)
	}
	na, nb := float64(len(a)), float64(len(b))

	wa, wb := va/na, vb/nb
	se := math.Sqrt(wa + wb)
	// Welch-Satterthwaite degrees of freedom.
	df := (wa + wb) * (wa + wb) /
		(wa*wa/(na-1) + wb*wb/(nb-1))

	res := tResult(sa.Mean()-sb.Mean(), 0, se, df, level)
	res.N1, res.N2 = len(a), len(b)
	return &res, nil
}
