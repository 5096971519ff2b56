// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regress

import (
	"fmt"
	"math"

	"github.com/snakemath/statlab/stats"
)

// Pearson returns the Pearson product-moment correlation coefficient
// of the paired series x and y.
//
// It fails with ErrSampleSize for fewer than two pairs,
// ErrInvalidParams for mismatched lengths, and ErrDegenerate when
// either series has zero variance (the coefficient is undefined).
func Pearson(x, y []float64) (float64, error) {
	if err := checkPaired(x, y, 2); err != nil {
		return 0, err
	}
	_, _, sxx, syy, sxy := moments(x, y)
	if sxx == 0 || syy == 0 {
		return 0, fmt.Errorf("%w: a series with zero variance has no correlation",
			stats.ErrDegenerate)
	}
	return sxy / math.Sqrt(sxx*syy), nil
}

// An Interpretation is a plain-language reading of a correlation
// coefficient.
type Interpretation struct {
	// Strength is one of "negligible", "weak", "moderate",
	// "strong", or "very strong".
	Strength string

	// Direction is "positive", "negative", or "none".
	Direction string
}

// Strength thresholds on |r|. These cutoffs are a widely used
// convention for teaching, not a statistical law.
var strengthThresholds = []struct {
	limit float64
	label string
}{
	{0.1, "negligible"},
	{0.3, "weak"},
	{0.5, "moderate"},
	{0.7, "strong"},
}

// Interpret maps a correlation coefficient to a strength label
// ([0, 0.1) negligible, [0.1, 0.3) weak, [0.3, 0.5) moderate,
// [0.5, 0.7) strong, [0.7, 1] very strong) and a direction.
func Interpret(r float64) Interpretation {
	in := Interpretation{Strength: "very strong"}
	abs := math.Abs(r)
	for _, t := range strengthThresholds {
		if abs < t.limit {
			in.Strength = t.label
			break
		}
	}
	switch {
	case r > 0:
		in.Direction = "positive"
	case r < 0:
		in.Direction = "negative"
	default:
		in.Direction = "none"
	}
	return in
}
