// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyptest

import "fmt"

// smallSampleLimit is the sample size below which the t-tests'
// normality assumption deserves a caution.
const smallSampleLimit = 30

// minExpectedCount is the smallest expected success/failure count for
// which the proportion z-tests' normal approximation is considered
// adequate.
const minExpectedCount = 5

// CheckTTestAssumptions returns advisory warnings about t-test
// assumptions for the given samples. Warnings are heuristics for the
// caller to surface; they never invalidate a test result.
func CheckTTestAssumptions(samples ...[]float64) []string {
	var warnings []string
	for i, s := range samples {
		if len(s) < smallSampleLimit {
			warnings = append(warnings, fmt.Sprintf(
				"sample %d has %d values; below %d the t-test leans on the population being roughly normal",
				i+1, len(s), smallSampleLimit))
		}
	}
	return warnings
}

// CheckProportionAssumptions returns advisory warnings about the
// normal approximation behind a proportion z-test with the given
// counts and hypothesized proportion.
func CheckProportionAssumptions(successes, n int, p0 float64) []string {
	var warnings []string
	expSuccess := float64(n) * p0
	expFailure := float64(n) * (1 - p0)
	if expSuccess < minExpectedCount || expFailure < minExpectedCount {
		warnings = append(warnings, fmt.Sprintf(
			"expected counts %.1f successes / %.1f failures are below %d; the normal approximation is unreliable",
			expSuccess, expFailure, minExpectedCount))
	}
	if successes == 0 || successes == n {
		warnings = append(warnings,
			"observed proportion is 0 or 1; consider an exact binomial test")
	}
	return warnings
}
