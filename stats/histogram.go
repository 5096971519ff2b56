// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "fmt"

// A HistogramBin is one equal-width bin of an empirical histogram.
type HistogramBin struct {
	// Start and End bound the bin. Every bin includes Start;
	// only the last bin also includes End.
	Start, End float64

	// Count is the number of observations in the bin.
	Count int

	// Density is Count normalized so the histogram integrates to
	// 1: Count / (total observations × bin width). This makes a
	// histogram directly comparable with a PDF overlay.
	Density float64
}

// Histogram partitions data into binCount equal-width bins spanning
// [min(data), max(data)]. The last bin is closed on both ends so the
// maximum observation is never dropped.
func Histogram(data []float64, binCount int) ([]HistogramBin, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no observations to bin", ErrSampleSize)
	}
	if binCount < 1 {
		return nil, fmt.Errorf("%w: bin count %d", ErrInvalidParams, binCount)
	}
	// A non-finite observation has no bin; it would otherwise
	// convert to a garbage index below.
	for _, x := range data {
		if !finite(x) {
			return nil, fmt.Errorf("%w: non-finite observation %v", ErrInvalidParams, x)
		}
	}

	lo, hi := Sample{Xs: data}.Bounds()
	if lo == hi {
		// All values are equal. Widen the range so bins have
		// nonzero width.
		lo, hi = lo-0.5, hi+0.5
	}
	width := (hi - lo) / float64(binCount)

	bins := make([]HistogramBin, binCount)
	for i := range bins {
		bins[i].Start = lo + float64(i)*width
		bins[i].End = lo + float64(i+1)*width
	}
	bins[binCount-1].End = hi

	for _, x := range data {
		i := int((x - lo) / width)
		if i >= binCount {
			// x is the maximum; it belongs to the last bin.
			i = binCount - 1
		}
		bins[i].Count++
	}

	norm := float64(len(data)) * width
	for i := range bins {
		bins[i].Density = float64(bins[i].Count) / norm
	}
	return bins, nil
}
