// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "errors"

var (
	// ErrInvalidParams is returned when a distribution's
	// parameters violate its constraints (for example σ ≤ 0 for a
	// normal distribution), or when a parameter is NaN or
	// infinite.
	ErrInvalidParams = errors.New("invalid distribution parameters")

	// ErrSampleSize is returned when a computation is given fewer
	// observations than it requires.
	ErrSampleSize = errors.New("sample is too small")

	// ErrDegenerate is returned when an input is structurally
	// valid but geometrically degenerate, such as a zero-variance
	// predictor in a regression.
	ErrDegenerate = errors.New("degenerate input")

	// ErrProbRange is returned when a probability argument falls
	// outside [0, 1].
	ErrProbRange = errors.New("probability outside [0, 1]")
)
