// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regress

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/snakemath/statlab/stats"
)

// GenerateCorrelated synthesizes n observation pairs whose population
// correlation is targetR, with the requested marginal means and
// standard deviations:
//
//	y* = targetR·x* + √(1-targetR²)·ε,  x*, ε ~ N(0, 1)
//
// then rescales both coordinates. The empirical correlation of a
// finite draw only approximates targetR; the approximation tightens
// as n grows.
func GenerateCorrelated(n int, targetR, meanX, sdX, meanY, sdY float64, r *rand.Rand) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d", stats.ErrSampleSize, n)
	}
	if math.IsNaN(targetR) || targetR < -1 || targetR > 1 {
		return nil, fmt.Errorf("%w: target correlation %v", stats.ErrInvalidParams, targetR)
	}
	if sdX <= 0 || sdY <= 0 {
		return nil, fmt.Errorf("%w: standard deviations %v, %v",
			stats.ErrInvalidParams, sdX, sdY)
	}

	noiseWeight := math.Sqrt(1 - targetR*targetR)
	points := make([]Point, n)
	for i := range points {
		x := stats.StdNormal.Rand(r)
		yStd := targetR*x + noiseWeight*stats.StdNormal.Rand(r)
		points[i] = Point{
			X: meanX + sdX*x,
			Y: meanY + sdY*yStd,
		}
	}
	return points, nil
}
