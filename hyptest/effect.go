// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyptest

import (
	"fmt"
	"math"

	"github.com/snakemath/statlab/stats"
)

// CohensD returns the one-sample standardized effect size
// (mean - mu0) / sd.
func CohensD(sample []float64, mu0 float64) (float64, error) {
	if len(sample) < 2 {
		return 0, fmt.Errorf("%w: %d values", stats.ErrSampleSize, len(sample))
	}
	s := stats.Sample{Xs: sample}
	sd := s.StdDev()
	if sd == 0 {
		return 0, fmt.Errorf("%w: all sample values are equal", stats.ErrDegenerate)
	}
	return (s.Mean() - mu0) / sd, nil
}

// CohensDTwoGroups returns the two-sample standardized effect size
// (mean(a) - mean(b)) / s_pooled, where s_pooled weighs each group's
// variance by its degrees of freedom.
func CohensDTwoGroups(a, b []float64) (float64, error) {
	if len(a) < 2 || len(b) < 2 {
		return 0, fmt.Errorf("%w: %d and %d values", stats.ErrSampleSize, len(a), len(b))
	}
	sa, sb := stats.Sample{Xs: a}, stats.Sample{Xs: b}
	na, nb := float64(len(a)), float64(len(b))
	pooled := math.Sqrt(((na-1)*sa.Variance() + (nb-1)*sb.Variance()) / (na + nb - 2))
	if pooled == 0 {
		return 0, fmt.Errorf("%w: both samples are constant", stats.ErrDegenerate)
	}
	return (sa.Mean() - sb.Mean()) / pooled, nil
}

// CohensH returns the effect size for a difference of proportions:
// 2·asin(√p1) - 2·asin(√p2). The arcsine transform makes equal
// differences comparable across the [0, 1] range.
func CohensH(p1, p2 float64) (float64, error) {
	for _, p := range []float64{p1, p2} {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return 0, fmt.Errorf("%w: proportion %v", stats.ErrProbRange, p)
		}
	}
	return 2*math.Asin(math.Sqrt(p1)) - 2*math.Asin(math.Sqrt(p2)), nil
}

// InterpretD maps |d| to Cohen's conventional labels: small from 0.2,
// medium from 0.5, large from 0.8. Below 0.2 is negligible. The
// cutoffs are conventions, not laws.
func InterpretD(d float64) string {
	return interpretMagnitude(math.Abs(d))
}

// InterpretH maps |h| to the same conventional labels as InterpretD;
// Cohen proposed identical cutoffs for h.
func InterpretH(h float64) string {
	return interpretMagnitude(math.Abs(h))
}

func interpretMagnitude(m float64) string {
	switch {
	case m < 0.2:
		return "negligible"
	case m < 0.5:
		return "small"
	case m < 0.8:
		return "medium"
	}
	return "large"
}
