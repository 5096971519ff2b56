// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math/rand"

// UniformDist is a continuous uniform distribution on [A, B], A < B.
type UniformDist struct {
	A, B float64
}

func (d UniformDist) PDF(x float64) float64 {
	if x < d.A || x > d.B {
		return 0
	}
	return 1 / (d.B - d.A)
}

func (d UniformDist) CDF(x float64) float64 {
	if x < d.A {
		return 0
	} else if x > d.B {
		return 1
	}
	return (x - d.A) / (d.B - d.A)
}

func (d UniformDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	return d.A + p*(d.B-d.A)
}

func (d UniformDist) Rand(r *rand.Rand) float64 {
	var u float64
	if r == nil {
		u = rand.Float64()
	} else {
		u = r.Float64()
	}
	return d.A + u*(d.B-d.A)
}

func (d UniformDist) Bounds() (float64, float64) {
	return d.A, d.B
}

func (d UniformDist) Mean() float64 { return (d.A + d.B) / 2 }

func (d UniformDist) Variance() float64 {
	w := d.B - d.A
	return w * w / 12
}
