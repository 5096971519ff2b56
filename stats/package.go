// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats implements the distribution engine behind SnakeMath's
// interactive widgets: the five supported probability distribution
// families, empirical sample statistics, histogram binning, and
// kernel density estimates.
package stats // import "github.com/snakemath/statlab/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
