// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestBinomialDist(t *testing.T) {
	dist := BinomialDist{N: 5, P: 0.2}
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[float64]float64{
			-1000: 0,
			-1:    0,
			0:     0.32768,
			1:     0.4096,
			2:     0.2048,
			3:     0.0512,
			4:     0.0064,
			5:     math.Pow(dist.P, 5),
			6:     0,
			1000:  0,
		})
	testDiscreteCDF(t, fmt.Sprintf("%+v.CDF", dist), dist)

	// Spot value: B(20, 0.5) at k=10 is C(20,10)/2²⁰.
	if got := (BinomialDist{N: 20, P: 0.5}).PMF(10); !aeq(0.17619705, got) {
		t.Errorf("B(20,0.5).PMF(10): want 0.17619705, got %v", got)
	}

	// Agree with gonum's CDF.
	ref := distuv.Binomial{N: 5, P: 0.2}
	for k := 0.0; k <= 5; k++ {
		if got, want := dist.CDF(k), ref.CDF(k); !aeqTol(want, got, 1e-9) {
			t.Errorf("CDF(%v): want %v, got %v", k, want, got)
		}
	}

	dist = BinomialDist{N: 30, P: 0.5}
	norm := dist.NormalApprox()
	for k := 10; k <= 20; k++ {
		b := dist.PMF(float64(k))
		n := norm.CDF(float64(k)+0.5) - norm.CDF(float64(k)-0.5)

		// The normal approximation isn't actually very close,
		// even with high N and P near 0.5, so we only check
		// the center of the distribution and we're pretty
		// lax.
		err := math.Abs(b/n - 1)
		if err > 0.01 {
			t.Errorf("want %v ≅ %v at %d", b, n, k)
		}
	}
}

func TestBinomialInvCDF(t *testing.T) {
	dist := BinomialDist{N: 5, P: 0.2}
	// CDF: 0.32768, 0.73728, 0.94208, 0.99328, 0.99968, 1.
	testFunc(t, "InvCDF", dist.InvCDF, map[float64]float64{
		0:    0,
		0.3:  0,
		0.5:  1,
		0.8:  2,
		0.95: 3,
		1:    5,
	})
	if got := dist.InvCDF(-0.5); !math.IsNaN(got) {
		t.Errorf("InvCDF(-0.5): want NaN, got %v", got)
	}
	if got := dist.InvCDF(2); !math.IsNaN(got) {
		t.Errorf("InvCDF(2): want NaN, got %v", got)
	}

	// InvCDF returns the smallest k with CDF(k) >= p.
	big := BinomialDist{N: 400, P: 0.3}
	for _, p := range []float64{0.01, 0.25, 0.5, 0.75, 0.99} {
		k := big.InvCDF(p)
		if big.CDF(k) < p {
			t.Errorf("CDF(InvCDF(%v)) = %v < p", p, big.CDF(k))
		}
		if k > 0 && big.CDF(k-1) >= p {
			t.Errorf("InvCDF(%v) = %v is not the smallest k", p, k)
		}
	}
}

func TestBinomialRand(t *testing.T) {
	dist := BinomialDist{N: 20, P: 0.3}
	r := newTestRand()
	n := 20000
	s := Sample{Xs: make([]float64, n)}
	for i := range s.Xs {
		s.Xs[i] = dist.Rand(r)
	}
	if got := s.Mean(); !aeqTol(dist.Mean(), got, 0.1) {
		t.Errorf("sample mean: want ≈%v, got %v", dist.Mean(), got)
	}
	if got := s.Variance(); !aeqTol(dist.Variance(), got, 0.2) {
		t.Errorf("sample variance: want ≈%v, got %v", dist.Variance(), got)
	}
}
