// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func TestBeta(t *testing.T) {
	// B(a,b) = (a-1)!(b-1)!/(a+b-1)! for integer arguments.
	if got := Beta(2, 3); !aeq(1.0/12, got) {
		t.Errorf("Beta(2, 3): want 1/12, got %v", got)
	}
	if got := Beta(1, 1); !aeq(1, got) {
		t.Errorf("Beta(1, 1): want 1, got %v", got)
	}
	// Symmetry.
	if got, want := Beta(2.5, 4), Beta(4, 2.5); !aeq(want, got) {
		t.Errorf("Beta(2.5, 4) = %v != Beta(4, 2.5) = %v", got, want)
	}
}

func TestBetaInc(t *testing.T) {
	// Endpoints.
	if got := BetaInc(0, 2, 3); got != 0 {
		t.Errorf("BetaInc(0, 2, 3): want 0, got %v", got)
	}
	if got := BetaInc(1, 2, 3); got != 1 {
		t.Errorf("BetaInc(1, 2, 3): want 1, got %v", got)
	}

	// I₀.₅(2, 3) = ∫₀⁰·⁵ 12x(1-x)² dx = 0.6875.
	if got := BetaInc(0.5, 2, 3); !aeq(0.6875, got) {
		t.Errorf("BetaInc(0.5, 2, 3): want 0.6875, got %v", got)
	}

	// Iₓ(1, 1) is the uniform CDF.
	if got := BetaInc(0.3, 1, 1); !aeq(0.3, got) {
		t.Errorf("BetaInc(0.3, 1, 1): want 0.3, got %v", got)
	}

	// Symmetry: Iₓ(a, b) = 1 - I₁₋ₓ(b, a).
	for _, x := range []float64{0.1, 0.25, 0.5, 0.9} {
		got := BetaInc(x, 3, 1.5)
		want := 1 - BetaInc(1-x, 1.5, 3)
		if !aeq(want, got) {
			t.Errorf("symmetry at x=%v: %v vs %v", x, got, want)
		}
	}
}
