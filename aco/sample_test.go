// Package aco_test validates the roulette-wheel sampling primitive:
// proportionality, zero-weight exclusion, and strict input policy.
package aco_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/antsys/aco"
)

// TestRoulette_UniformWeights_ApproximatelyUniform draws many samples over
// equal positive weights and checks each index lands near 1/n of the mass.
// Statistical, not exact; the fixed seed keeps the check reproducible.
func TestRoulette_UniformWeights_ApproximatelyUniform(t *testing.T) {
	const (
		n      = 4     // number of outcomes
		trials = 40000 // draws
	)
	var (
		rng     = rand.New(rand.NewSource(7))
		weights = []float64{1, 1, 1, 1}
		counts  = make([]int, n)
	)

	var i, idx int
	var err error
	for i = 0; i < trials; i++ {
		idx, err = aco.Roulette(weights, rng)
		if err != nil {
			t.Fatalf("Roulette failed: %v", err)
		}
		counts[idx]++
	}

	// Expected 10000 per bucket; ±5% is far beyond any plausible drift
	// for a healthy proportional sampler at this sample size.
	const expected = trials / n
	for i = 0; i < n; i++ {
		if math.Abs(float64(counts[i]-expected)) > 0.05*expected {
			t.Fatalf("index %d drawn %d times, want %d ±5%%", i, counts[i], expected)
		}
	}
}

// TestRoulette_Proportionality checks observed frequencies track the weight
// ratios on a skewed vector.
func TestRoulette_Proportionality(t *testing.T) {
	const trials = 60000
	var (
		rng     = rand.New(rand.NewSource(11))
		weights = []float64{1, 2, 3, 4}
		total   = 10.0
		counts  = make([]int, len(weights))
	)

	for i := 0; i < trials; i++ {
		idx, err := aco.Roulette(weights, rng)
		if err != nil {
			t.Fatalf("Roulette failed: %v", err)
		}
		counts[idx]++
	}

	for i, w := range weights {
		var (
			got  = float64(counts[i]) / trials
			want = w / total
		)
		if math.Abs(got-want) > 0.01 {
			t.Fatalf("index %d frequency %.4f, want %.4f ±0.01", i, got, want)
		}
	}
}

// TestRoulette_ZeroWeightNeverSelected hammers a vector with interleaved
// zero weights; the zero positions must never come back.
func TestRoulette_ZeroWeightNeverSelected(t *testing.T) {
	var (
		rng     = rand.New(rand.NewSource(3))
		weights = []float64{0, 1, 0, 2, 0}
	)

	for i := 0; i < 10000; i++ {
		idx, err := aco.Roulette(weights, rng)
		if err != nil {
			t.Fatalf("Roulette failed: %v", err)
		}
		if weights[idx] == 0 {
			t.Fatalf("selected zero-weight index %d on draw %d", idx, i)
		}
	}
}

// TestRoulette_InputPolicy locks the sentinel behavior for degenerate inputs.
func TestRoulette_InputPolicy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := aco.Roulette(nil, rng)
	if !errors.Is(err, aco.ErrDimensionMismatch) {
		t.Fatalf("empty weights: want ErrDimensionMismatch, got %v", err)
	}

	_, err = aco.Roulette([]float64{0, 0, 0}, rng)
	if !errors.Is(err, aco.ErrZeroWeights) {
		t.Fatalf("all-zero weights: want ErrZeroWeights, got %v", err)
	}

	_, err = aco.Roulette([]float64{1, -2}, rng)
	if !errors.Is(err, aco.ErrNegativeWeight) {
		t.Fatalf("negative weight: want ErrNegativeWeight, got %v", err)
	}

	_, err = aco.Roulette([]float64{1, math.NaN()}, rng)
	if !errors.Is(err, aco.ErrNegativeWeight) {
		t.Fatalf("NaN weight: want ErrNegativeWeight, got %v", err)
	}

	_, err = aco.Roulette([]float64{1, math.Inf(1)}, rng)
	if !errors.Is(err, aco.ErrNegativeWeight) {
		t.Fatalf("Inf weight: want ErrNegativeWeight, got %v", err)
	}
}

// TestRoulette_NilRNG_Deterministic verifies the seed==0 default-stream
// policy: a nil rng behaves identically on every call.
func TestRoulette_NilRNG_Deterministic(t *testing.T) {
	weights := []float64{1, 2, 3}

	first, err := aco.Roulette(weights, nil)
	if err != nil {
		t.Fatalf("Roulette failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		idx, rerr := aco.Roulette(weights, nil)
		if rerr != nil {
			t.Fatalf("Roulette failed: %v", rerr)
		}
		if idx != first {
			t.Fatalf("nil-rng draw %d differs: got %d, want %d", i, idx, first)
		}
	}
}
