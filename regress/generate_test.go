// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regress

import (
	"errors"
	"testing"

	"github.com/snakemath/statlab/stats"
)

func TestGenerateCorrelated(t *testing.T) {
	r := newTestRand()
	points, err := GenerateCorrelated(4000, 0.7, 50, 10, 100, 20, r)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 4000 {
		t.Fatalf("got %d points, want 4000", len(points))
	}

	x, y := Coords(points)
	if got := (stats.Sample{Xs: x}).Mean(); !aeqTol(50, got, 0.5) {
		t.Errorf("x mean: want ≈50, got %v", got)
	}
	if got := (stats.Sample{Xs: x}).StdDev(); !aeqTol(10, got, 0.5) {
		t.Errorf("x stddev: want ≈10, got %v", got)
	}
	if got := (stats.Sample{Xs: y}).Mean(); !aeqTol(100, got, 1) {
		t.Errorf("y mean: want ≈100, got %v", got)
	}
	if got := (stats.Sample{Xs: y}).StdDev(); !aeqTol(20, got, 1) {
		t.Errorf("y stddev: want ≈20, got %v", got)
	}

	got, err := Pearson(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if !aeqTol(0.7, got, 0.05) {
		t.Errorf("empirical r: want ≈0.7, got %v", got)
	}
}

func TestGenerateCorrelatedExtremes(t *testing.T) {
	r := newTestRand()

	// targetR = 1 collapses the noise term entirely.
	points, err := GenerateCorrelated(100, 1, 0, 1, 0, 1, r)
	if err != nil {
		t.Fatal(err)
	}
	x, y := Coords(points)
	if got, _ := Pearson(x, y); !aeqTol(1, got, 1e-9) {
		t.Errorf("targetR=1: empirical r %v", got)
	}

	points, err = GenerateCorrelated(100, -1, 0, 1, 0, 1, r)
	if err != nil {
		t.Fatal(err)
	}
	x, y = Coords(points)
	if got, _ := Pearson(x, y); !aeqTol(-1, got, 1e-9) {
		t.Errorf("targetR=-1: empirical r %v", got)
	}

	// targetR = 0 leaves the coordinates independent.
	points, err = GenerateCorrelated(4000, 0, 0, 1, 0, 1, r)
	if err != nil {
		t.Fatal(err)
	}
	x, y = Coords(points)
	if got, _ := Pearson(x, y); !aeqTol(0, got, 0.05) {
		t.Errorf("targetR=0: empirical r %v", got)
	}
}

func TestGenerateCorrelatedErrors(t *testing.T) {
	if _, err := GenerateCorrelated(1, 0.5, 0, 1, 0, 1, nil); !errors.Is(err, stats.ErrSampleSize) {
		t.Errorf("n=1: error %v, want ErrSampleSize", err)
	}
	if _, err := GenerateCorrelated(10, 1.5, 0, 1, 0, 1, nil); !errors.Is(err, stats.ErrInvalidParams) {
		t.Errorf("targetR=1.5: error %v, want ErrInvalidParams", err)
	}
	if _, err := GenerateCorrelated(10, 0.5, 0, 0, 0, 1, nil); !errors.Is(err, stats.ErrInvalidParams) {
		t.Errorf("sdX=0: error %v, want ErrInvalidParams", err)
	}
	if _, err := GenerateCorrelated(10, 0.5, 0, 1, 0, -2, nil); !errors.Is(err, stats.ErrInvalidParams) {
		t.Errorf("sdY<0: error %v, want ErrInvalidParams", err)
	}
}
