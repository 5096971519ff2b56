// Copyright 2025 The SnakeMath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// sampling implements sampling theory for SnakeMath's sampling
// simulator: synthetic population generation, the four classical
// selection methods, standard errors and confidence intervals for the
// sample mean, bootstrap resampling, and required-sample-size
// formulas.
//
// Every randomized function takes an optional *rand.Rand; passing nil
// uses the global source, and passing a seeded generator makes the
// draw reproducible.
package sampling // import "github.com/snakemath/statlab/sampling"

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/snakemath/statlab/stats"
)

// A SampleResult is one sampling draw from a finite population.
type SampleResult struct {
	// Values are the sampled observations.
	Values []float64

	// Indices locate each value in the population slice the draw
	// was taken from. The population itself is never mutated.
	Indices []int

	// Mean, StdDev, and StdErr summarize the draw. StdDev uses
	// Bessel's correction and is NaN for single-value draws.
	Mean   float64
	StdDev float64
	StdErr float64
}

func newResult(values []float64, indices []int) SampleResult {
	s := stats.Sample{Xs: values}
	sd := s.StdDev()
	return SampleResult{
		Values:  values,
		Indices: indices,
		Mean:    s.Mean(),
		StdDev:  sd,
		StdErr:  StandardErrorMean(sd, len(values)),
	}
}

// GeneratePopulation builds a finite population of size values drawn
// from spec. The result is ground truth for sampling-method
// demonstrations, not itself a statistical sample.
func GeneratePopulation(spec stats.DistributionSpec, size int, r *rand.Rand) ([]float64, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: population size %d", stats.ErrInvalidParams, size)
	}
	return spec.Samples(size, r)
}

func checkDraw(populationSize, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: requested sample size %d", stats.ErrSampleSize, n)
	}
	if n > populationSize {
		return fmt.Errorf("%w: requested %d of %d without replacement",
			stats.ErrSampleSize, n, populationSize)
	}
	return nil
}

func intn(r *rand.Rand, n int) int {
	if r == nil {
		return rand.Intn(n)
	}
	return r.Intn(n)
}

// SimpleRandomSample draws n values from population uniformly without
// replacement.
func SimpleRandomSample(population []float64, n int, r *rand.Rand) (SampleResult, error) {
	if err := checkDraw(len(population), n); err != nil {
		return SampleResult{}, err
	}

	// Partial Fisher-Yates shuffle: after i swaps, perm[:i] is a
	// uniform draw of i indices.
	perm := make([]int, len(population))
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + intn(r, len(perm)-i)
		perm[i], perm[j] = perm[j], perm[i]
	}

	indices := perm[:n:n]
	values := make([]float64, n)
	for i, idx := range indices {
		values[i] = population[idx]
	}
	return newResult(values, indices), nil
}

// SystematicSample draws every k'th value from population, where
// k = ⌊len(population)/n⌋, starting from a random offset in [0, k).
func SystematicSample(population []float64, n int, r *rand.Rand) (SampleResult, error) {
	if err := checkDraw(len(population), n); err != nil {
		return SampleResult{}, err
	}

	interval := len(population) / n
	start := intn(r, interval)
	values := make([]float64, n)
	indices := make([]int, n)
	for i := 0; i < n; i++ {
		idx := start + i*interval
		indices[i] = idx
		values[i] = population[idx]
	}
	return newResult(values, indices), nil
}

// StratifiedSample allocates n proportionally across the given
// pre-partitioned strata and draws a simple random sample within
// each. Indices refer into the concatenation of the strata in order.
//
// It fails if any stratum's proportional allocation exceeds the
// stratum's size.
func StratifiedSample(strata [][]float64, n int, r *rand.Rand) (SampleResult, error) {
	total := 0
	for _, stratum := range strata {
		total += len(stratum)
	}
	if err := checkDraw(total, n); err != nil {
		return SampleResult{}, err
	}

	counts := allocateProportional(strata, n, total)

	var values []float64
	var indices []int
	offset := 0
	for i, stratum := range strata {
		if counts[i] > len(stratum) {
			return SampleResult{}, fmt.Errorf("%w: stratum %d needs %d of %d values",
				stats.ErrSampleSize, i, counts[i], len(stratum))
		}
		if counts[i] > 0 {
			res, err := SimpleRandomSample(stratum, counts[i], r)
			if err != nil {
				return SampleResult{}, err
			}
			values = append(values, res.Values...)
			for _, idx := range res.Indices {
				indices = append(indices, offset+idx)
			}
		}
		offset += len(stratum)
	}
	return newResult(values, indices), nil
}

// allocateProportional splits n across strata proportionally to their
// sizes, distributing rounding leftovers to the largest remainders so
// the counts always sum to exactly n.
func allocateProportional(strata [][]float64, n, total int) []int {
	counts := make([]int, len(strata))
	remainders := make([]float64, len(strata))
	allocated := 0
	for i, stratum := range strata {
		exact := float64(n) * float64(len(stratum)) / float64(total)
		counts[i] = int(math.Floor(exact))
		remainders[i] = exact - math.Floor(exact)
		allocated += counts[i]
	}
	for allocated < n {
		best := -1
		for i, rem := range remainders {
			if best == -1 || rem > remainders[best] {
				best = i
			}
		}
		counts[best]++
		remainders[best] = -1
		allocated++
	}
	return counts
}

// ClusterSample partitions population into numClusters contiguous
// groups of near-equal size, selects clustersToSelect of them
// uniformly without replacement, and returns all members of the
// selected groups. Every group is non-empty.
//
// Unlike the other methods, the returned sample size is determined by
// the selected cluster sizes, not requested directly.
func ClusterSample(population []float64, numClusters, clustersToSelect int, r *rand.Rand) (SampleResult, error) {
	if numClusters < 1 || numClusters > len(population) {
		return SampleResult{}, fmt.Errorf("%w: %d clusters over %d values",
			stats.ErrInvalidParams, numClusters, len(population))
	}
	if clustersToSelect < 1 || clustersToSelect > numClusters {
		return SampleResult{}, fmt.Errorf("%w: selecting %d of %d clusters",
			stats.ErrSampleSize, clustersToSelect, numClusters)
	}

	// Uniform draw of cluster IDs without replacement.
	ids := make([]int, numClusters)
	for i := range ids {
		ids[i] = i
	}
	for i := 0; i < clustersToSelect; i++ {
		j := i + intn(r, numClusters-i)
		ids[i], ids[j] = ids[j], ids[i]
	}

	// Balanced contiguous partition: cluster c spans
	// [c*N/m, (c+1)*N/m), so cluster sizes differ by at most one
	// and every cluster is non-empty whenever m <= N.
	var values []float64
	var indices []int
	for _, c := range ids[:clustersToSelect] {
		lo := c * len(population) / numClusters
		hi := (c + 1) * len(population) / numClusters
		for idx := lo; idx < hi; idx++ {
			indices = append(indices, idx)
			values = append(values, population[idx])
		}
	}
	return newResult(values, indices), nil
}
