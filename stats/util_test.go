// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func aeqTol(expect, got, tol float64) bool {
	return math.Abs(expect-got) < tol
}

// newTestRand returns a deterministic generator so randomized tests
// are reproducible.
func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func testFunc(t *testing.T, name string, f func(float64) float64, cases map[float64]float64) {
	t.Helper()
	for x, want := range cases {
		if got := f(x); !aeq(want, got) {
			t.Errorf("%s(%v): want %v, got %v", name, x, want, got)
		}
	}
}

// testDiscreteCDF checks that d's CDF is 0 below the support, is
// monotone, and agrees with accumulated PMF sums across the support.
func testDiscreteCDF(t *testing.T, name string, d DiscreteDist) {
	t.Helper()
	lo, hi := d.Bounds()
	if got := d.CDF(lo - 1); got != 0 {
		t.Errorf("%s(%v): want 0, got %v", name, lo-1, got)
	}
	sum, prev := 0.0, 0.0
	for k := lo; k <= hi; k += d.Step() {
		sum += d.PMF(k)
		cdf := d.CDF(k)
		if !aeq(sum, cdf) {
			t.Errorf("%s(%v): want ΣPMF = %v, got %v", name, k, sum, cdf)
		}
		if cdf < prev {
			t.Errorf("%s not monotone at %v: %v < %v", name, k, cdf, prev)
		}
		prev = cdf
	}
}
