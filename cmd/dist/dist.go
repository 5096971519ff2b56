// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist reads newline-separated numbers from stdin and describes their
// distribution.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/snakemath/statlab/sampling"
	"github.com/snakemath/statlab/stats"
)

func main() {
	s := readInput(os.Stdin)
	s.Sort()

	fmt.Printf("N %d  sum %.6g  mean %.6g", len(s.Xs), s.Sum(), s.Mean())
	gmean := s.GeoMean()
	if !math.IsNaN(gmean) {
		fmt.Printf("  gmean %.6g", gmean)
	}
	fmt.Printf("  std dev %.6g  variance %.6g\n", s.StdDev(), s.Variance())

	if ci, err := sampling.ConfidenceIntervalMean(s.Mean(), s.StdDev(), len(s.Xs), 0.95); err == nil {
		fmt.Printf("95%% CI for mean [%.6g, %.6g]  (±%.6g)\n", ci.Lower, ci.Upper, ci.MarginOfError)
	}
	fmt.Println()

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Printf("%8s %.6g\n", label, s.Quantile(float64(p)/100))
	}
	fmt.Println()

	// Density histogram with a kernel density overlay.
	bins, err := stats.Histogram(s.Xs, 15)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	kde := stats.KDE{Sample: s}.Dist()
	maxDensity := 0.0
	for _, bin := range bins {
		if bin.Density > maxDensity {
			maxDensity = bin.Density
		}
	}
	for _, bin := range bins {
		mid := (bin.Start + bin.End) / 2
		bar := ""
		if maxDensity > 0 {
			bar = strings.Repeat("*", int(bin.Density/maxDensity*40+0.5))
		}
		fmt.Printf("%10.4g %-40s kde %.4g\n", mid, bar, kde.PDF(mid))
	}
}

func readInput(r io.Reader) (sample stats.Sample) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		sample.Xs = append(sample.Xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return
}
