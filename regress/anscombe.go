// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regress

// AnscombeQuartet returns Anscombe's four datasets: visually
// unmistakable patterns (a linear trend, a curve, an outlier-pulled
// line, and a vertical cluster with one influential point) that share
// nearly identical means, correlations (r ≈ 0.816), and regression
// lines (ŷ ≈ 3.00 + 0.50x).
//
// Anscombe, F. J. (1973). "Graphs in Statistical Analysis". The
// American Statistician 27 (1): 17-21.
func AnscombeQuartet() [4][]Point {
	return [4][]Point{
		{
			{10, 8.04}, {8, 6.95}, {13, 7.58}, {9, 8.81}, {11, 8.33}, {14, 9.96},
			{6, 7.24}, {4, 4.26}, {12, 10.84}, {7, 4.82}, {5, 5.68},
		},
		{
			{10, 9.14}, {8, 8.14}, {13, 8.74}, {9, 8.77}, {11, 9.26}, {14, 8.10},
			{6, 6.13}, {4, 3.10}, {12, 9.13}, {7, 7.26}, {5, 4.74},
		},
		{
			{10, 7.46}, {8, 6.77}, {13, 12.74}, {9, 7.11}, {11, 7.81}, {14, 8.84},
			{6, 6.08}, {4, 5.39}, {12, 8.15}, {7, 6.42}, {5, 5.73},
		},
		{
			{8, 6.58}, {8, 5.76}, {8, 7.71}, {8, 8.84}, {8, 8.47}, {8, 7.04},
			{8, 5.25}, {19, 12.50}, {8, 5.56}, {8, 7.91}, {8, 6.89},
		},
	}
}
