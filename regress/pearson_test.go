// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regress

import (
	"errors"
	"math"
	"testing"

	"github.com/snakemath/statlab/stats"
)

func TestPearson(t *testing.T) {
	// Perfectly linear data.
	x := []float64{1, 2, 3, 4, 5}
	if r, err := Pearson(x, []float64{2, 4, 6, 8, 10}); err != nil || !aeq(1, r) {
		t.Errorf("perfect positive: got %v, %v", r, err)
	}
	if r, err := Pearson(x, []float64{10, 8, 6, 4, 2}); err != nil || !aeq(-1, r) {
		t.Errorf("perfect negative: got %v, %v", r, err)
	}

	// Worked example: x={1..5}, y={2,4,5,4,5}.
	r, err := Pearson(x, []float64{2, 4, 5, 4, 5})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(0.7745967, r) {
		t.Errorf("worked example: want 0.7745967, got %v", r)
	}

	// Correlation is symmetric and invariant to affine rescaling.
	y := []float64{2, 4, 5, 4, 5}
	r2, _ := Pearson(y, x)
	if !aeq(r, r2) {
		t.Errorf("Pearson(y, x) = %v, want %v", r2, r)
	}
	scaled := make([]float64, len(y))
	for i, v := range y {
		scaled[i] = 100 + 7*v
	}
	r3, _ := Pearson(x, scaled)
	if !aeq(r, r3) {
		t.Errorf("rescaled y: got %v, want %v", r3, r)
	}
}

func TestPearsonAnscombe(t *testing.T) {
	// All four datasets share r ≈ 0.816 despite their shapes.
	for i, points := range AnscombeQuartet() {
		x, y := Coords(points)
		r, err := Pearson(x, y)
		if err != nil {
			t.Fatalf("dataset %d: %v", i+1, err)
		}
		if !aeqTol(0.8165, r, 0.002) {
			t.Errorf("dataset %d: r = %v, want ≈0.8165", i+1, r)
		}
	}
}

func TestPearsonErrors(t *testing.T) {
	if _, err := Pearson([]float64{1, 2}, []float64{1}); !errors.Is(err, stats.ErrInvalidParams) {
		t.Errorf("mismatched lengths: error %v, want ErrInvalidParams", err)
	}
	if _, err := Pearson([]float64{1}, []float64{1}); !errors.Is(err, stats.ErrSampleSize) {
		t.Errorf("single pair: error %v, want ErrSampleSize", err)
	}
	if _, err := Pearson([]float64{3, 3, 3}, []float64{1, 2, 3}); !errors.Is(err, stats.ErrDegenerate) {
		t.Errorf("constant x: error %v, want ErrDegenerate", err)
	}
	if _, err := Pearson([]float64{1, 2, 3}, []float64{5, 5, 5}); !errors.Is(err, stats.ErrDegenerate) {
		t.Errorf("constant y: error %v, want ErrDegenerate", err)
	}
	// Non-finite values are rejected rather than propagated into
	// the coefficient.
	if _, err := Pearson([]float64{1, math.NaN(), 3}, []float64{1, 2, 3}); !errors.Is(err, stats.ErrInvalidParams) {
		t.Errorf("NaN x: error %v, want ErrInvalidParams", err)
	}
	if _, err := Pearson([]float64{1, 2, 3}, []float64{1, math.Inf(1), 3}); !errors.Is(err, stats.ErrInvalidParams) {
		t.Errorf("Inf y: error %v, want ErrInvalidParams", err)
	}
}

func TestInterpret(t *testing.T) {
	for _, c := range []struct {
		r         float64
		strength  string
		direction string
	}{
		{0, "negligible", "none"},
		{0.05, "negligible", "positive"},
		{-0.2, "weak", "negative"},
		{0.3, "moderate", "positive"},
		{0.45, "moderate", "positive"},
		{-0.5, "strong", "negative"},
		{0.69, "strong", "positive"},
		{0.7, "very strong", "positive"},
		{-0.95, "very strong", "negative"},
		{1, "very strong", "positive"},
	} {
		in := Interpret(c.r)
		if in.Strength != c.strength || in.Direction != c.direction {
			t.Errorf("Interpret(%v): got {%s, %s}, want {%s, %s}",
				c.r, in.Strength, in.Direction, c.strength, c.direction)
		}
	}
}
