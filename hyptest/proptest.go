// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyptest

import (
	"fmt"
	"math"

	"github.com/snakemath/statlab/stats"
)

// A ZTestResult is the result of a proportion z-test.
type ZTestResult struct {
	// N1 and N2 are the sizes of the input samples. N2 is 0 for a
	// one-sample test.
	N1, N2 int

	// Z is the value of the z-statistic.
	Z float64

	// P is the two-tailed p-value.
	P float64
}

func zResult(z float64) ZTestResult {
	return ZTestResult{
		Z: z,
		P: 2 * stats.StdNormal.CDF(-math.Abs(z)),
	}
}

func checkCounts(successes, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: n=%d", stats.ErrSampleSize, n)
	}
	if successes < 0 || successes > n {
		return fmt.Errorf("%w: %d successes in %d trials",
			stats.ErrInvalidParams, successes, n)
	}
	return nil
}

// OneProportionZTest tests the null hypothesis that the population
// proportion equals p0, given successes out of n trials, against the
// two-sided alternative. The standard error uses p0, the proportion
// under the null.
func OneProportionZTest(successes, n int, p0 float64) (*ZTestResult, error) {
	if err := checkCounts(successes, n); err != nil {
		return nil, err
	}
	if math.IsNaN(p0) || p0 <= 0 || p0 >= 1 {
		return nil, fmt.Errorf("%w: null proportion %v", stats.ErrProbRange, p0)
	}
	pHat := float64(successes) / float64(n)
	se := math.Sqrt(p0 * (1 - p0) / float64(n))
	res := zResult((pHat - p0) / se)
	res.N1 = n
	return &res, nil
}

// TwoProportionZTest tests the null hypothesis that two population
// proportions are equal, given independent success counts, against
// the two-sided alternative. Under the null the groups share a
// proportion, so the standard error pools the counts.
func TwoProportionZTest(successes1, n1, successes2, n2 int) (*ZTestResult, error) {
	if err := checkCounts(successes1, n1); err != nil {
		return nil, err
	}
	if err := checkCounts(successes2, n2); err != nil {
		return nil, err
	}
	p1 := float64(successes1) / float64(n1)
	p2 := float64(successes2) / float64(n2)
	pooled := float64(successes1+successes2) / float64(n1+n2)
	se := math.Sqrt(pooled * (1 - pooled) * (1/float64(n1) + 1/float64(n2)))
	if se == 0 {
		return nil, fmt.Errorf("%w: pooled proportion is 0 or 1", stats.ErrDegenerate)
	}
	res := zResult((p1 - p2) / se)
	res.N1, res.N2 = n1, n2
	return &res, nil
}
