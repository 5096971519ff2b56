// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampling

import (
	"errors"
	"math"
	"testing"

	"github.com/snakemath/statlab/stats"
)

func TestStandardErrorMean(t *testing.T) {
	if got := StandardErrorMean(15, 25); !aeqTol(3, got, 1e-12) {
		t.Errorf("SE(15, 25): want 3, got %v", got)
	}
	if got := StandardErrorMean(15, 100); !aeqTol(1.5, got, 1e-12) {
		t.Errorf("SE(15, 100): want 1.5, got %v", got)
	}
}

func TestConfidenceIntervalMean(t *testing.T) {
	ci, err := ConfidenceIntervalMean(100, 15, 25, 0.95)
	if err != nil {
		t.Fatal(err)
	}
	// MOE = 1.9599640 × 15/√25.
	if !aeqTol(5.8798919536, ci.MarginOfError, 1e-6) {
		t.Errorf("MOE: want 5.87989, got %v", ci.MarginOfError)
	}
	if ci.PointEstimate != 100 {
		t.Errorf("point estimate: want 100, got %v", ci.PointEstimate)
	}
	if !aeqTol(100-ci.MarginOfError, ci.Lower, 1e-12) ||
		!aeqTol(100+ci.MarginOfError, ci.Upper, 1e-12) {
		t.Errorf("interval [%v, %v] not centered on 100", ci.Lower, ci.Upper)
	}

	// Higher confidence widens the interval; larger n narrows it.
	ci99, _ := ConfidenceIntervalMean(100, 15, 25, 0.99)
	if ci99.MarginOfError <= ci.MarginOfError {
		t.Errorf("99%% MOE %v not wider than 95%% MOE %v",
			ci99.MarginOfError, ci.MarginOfError)
	}
	ciBig, _ := ConfidenceIntervalMean(100, 15, 100, 0.95)
	if ciBig.MarginOfError >= ci.MarginOfError {
		t.Errorf("n=100 MOE %v not narrower than n=25 MOE %v",
			ciBig.MarginOfError, ci.MarginOfError)
	}
}

func TestConfidenceIntervalMeanErrors(t *testing.T) {
	if _, err := ConfidenceIntervalMean(0, 1, 0, 0.95); !errors.Is(err, stats.ErrSampleSize) {
		t.Errorf("n=0: error %v, want ErrSampleSize", err)
	}
	for _, level := range []float64{0, 1, -0.5, 1.5} {
		if _, err := ConfidenceIntervalMean(0, 1, 10, level); !errors.Is(err, stats.ErrProbRange) {
			t.Errorf("level %v: error %v, want ErrProbRange", level, err)
		}
	}
	// Non-finite summaries are rejected rather than turned into a
	// NaN interval.
	if _, err := ConfidenceIntervalMean(math.NaN(), 1, 10, 0.95); !errors.Is(err, stats.ErrInvalidParams) {
		t.Errorf("NaN mean: error %v, want ErrInvalidParams", err)
	}
	if _, err := ConfidenceIntervalMean(0, math.Inf(1), 10, 0.95); !errors.Is(err, stats.ErrInvalidParams) {
		t.Errorf("Inf stddev: error %v, want ErrInvalidParams", err)
	}
	if _, err := ConfidenceIntervalMean(0, -1, 10, 0.95); !errors.Is(err, stats.ErrInvalidParams) {
		t.Errorf("negative stddev: error %v, want ErrInvalidParams", err)
	}
}

func TestSampleSizeMean(t *testing.T) {
	// (1.9599640 × 15 / 3)² = 96.036 → 97.
	n, err := SampleSizeMean(3, 15, 0.95)
	if err != nil {
		t.Fatal(err)
	}
	if n != 97 {
		t.Errorf("SampleSizeMean(3, 15, 0.95): want 97, got %d", n)
	}

	// The result actually achieves the requested margin.
	ci, _ := ConfidenceIntervalMean(0, 15, n, 0.95)
	if ci.MarginOfError > 3 {
		t.Errorf("n=%d gives MOE %v > 3", n, ci.MarginOfError)
	}

	if _, err := SampleSizeMean(0, 15, 0.95); !errors.Is(err, stats.ErrInvalidParams) {
		t.Errorf("zero margin: error %v, want ErrInvalidParams", err)
	}
	if _, err := SampleSizeMean(3, -1, 0.95); !errors.Is(err, stats.ErrInvalidParams) {
		t.Errorf("negative stddev: error %v, want ErrInvalidParams", err)
	}
}

func TestSampleSizeProportion(t *testing.T) {
	// The classic ±5% worst-case poll: 1.9599640² × 0.25 / 0.0025
	// = 384.1 → 385.
	n, err := SampleSizeProportion(0.05, 0.5, 0.95)
	if err != nil {
		t.Fatal(err)
	}
	if n != 385 {
		t.Errorf("SampleSizeProportion(0.05, 0.5, 0.95): want 385, got %d", n)
	}

	// p away from 0.5 needs fewer subjects.
	n2, _ := SampleSizeProportion(0.05, 0.1, 0.95)
	if n2 >= n {
		t.Errorf("p=0.1 needs %d ≥ worst case %d", n2, n)
	}

	if _, err := SampleSizeProportion(0.05, 1.5, 0.95); !errors.Is(err, stats.ErrProbRange) {
		t.Errorf("p=1.5: error %v, want ErrProbRange", err)
	}
	if _, err := SampleSizeProportion(-0.05, 0.5, 0.95); !errors.Is(err, stats.ErrInvalidParams) {
		t.Errorf("negative margin: error %v, want ErrInvalidParams", err)
	}
}

// TestCoverage draws repeated samples from a known population and
// checks that the 95% interval for the mean covers the true mean about
// 95% of the time.
func TestCoverage(t *testing.T) {
	r := newTestRand()
	pop, err := GeneratePopulation(stats.NewNormal(100, 15), 10000, r)
	if err != nil {
		t.Fatal(err)
	}
	trueMean := (stats.Sample{Xs: pop}).Mean()

	const reps = 1000
	covered := 0
	for i := 0; i < reps; i++ {
		res, err := SimpleRandomSample(pop, 100, r)
		if err != nil {
			t.Fatal(err)
		}
		ci, err := ConfidenceIntervalMean(res.Mean, res.StdDev, 100, 0.95)
		if err != nil {
			t.Fatal(err)
		}
		if ci.Lower <= trueMean && trueMean <= ci.Upper {
			covered++
		}
	}

	rate := float64(covered) / reps
	if rate < 0.92 || rate > 0.975 {
		t.Errorf("coverage %v over %d reps, want ≈0.95", rate, reps)
	}
}
