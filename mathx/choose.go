// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx implements special functions used by the statistics packages.
package mathx // import "github.com/snakemath/statlab/mathx"

import "math"

// Factorial returns n! for integer n >= 0. It returns NaN for
// negative n and +Inf for n > 170, where n! exceeds the range of
// float64.
//
// Code that needs binomial coefficients for large n should use Choose,
// which cancels terms instead of forming full factorials.
func Factorial(n int) float64 {
	if n < 0 {
		return math.NaN()
	}
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

// Choose returns the binomial coefficient C(n, k), or 0 if k < 0 or
// k > n.
//
// This uses the multiplicative formula over min(k, n-k) terms, so it
// stays finite for n well past the point where n! overflows.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	res := 1.0
	for i := 0; i < k; i++ {
		res = res * float64(n-i) / float64(i+1)
	}
	return res
}
