// Package aco - roulette-wheel sampling, the sole weighted-choice primitive
// of the engine.
package aco

import (
	"math"
	"math/rand"
)

// Roulette draws an index i ∈ [0..len(weights)-1] with probability
// proportional to weights[i] (fitness-proportionate selection).
//
// Algorithm: build the running cumulative sum, scale one uniform draw from
// rng to the cumulative total, and return the first index whose cumulative
// sum strictly exceeds the draw. The strict comparison guarantees an index
// with zero weight is never selected while every positive weight keeps its
// exact w_i/total probability.
//
// Contract:
//   - weights must be non-empty (ErrDimensionMismatch otherwise);
//   - every weight must be ≥ 0 and not NaN (ErrNegativeWeight);
//   - at least one weight must be > 0 (ErrZeroWeights — the degenerate
//     all-zero vector has no defined distribution; Optimize avoids it by
//     flooring pheromone at TauMin);
//   - rng may be nil ⇒ the deterministic default stream (seed==0 policy).
//
// Side effect: consumes exactly one draw from rng.
//
// Complexity: O(n) time, O(1) extra space.
func Roulette(weights []float64, rng *rand.Rand) (int, error) {
	if len(weights) == 0 {
		return 0, ErrDimensionMismatch
	}

	// Pass 1: total mass + input policy.
	var (
		total float64 // cumulative total of all weights
		w     float64 // current weight
		i     int     // loop iterator
	)
	for i = 0; i < len(weights); i++ {
		w = weights[i]
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrNegativeWeight
		}
		total += w
	}
	if total == 0 {
		return 0, ErrZeroWeights
	}

	var r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	// One uniform draw in [0, total); Float64 never returns 1.0 so the
	// strict cum > u scan below always terminates inside the slice for
	// exact arithmetic.
	var u = r.Float64() * total

	// Pass 2: first index whose cumulative sum strictly exceeds the draw.
	var (
		cum  float64 // running cumulative sum
		last = -1    // last index with positive weight (float-drift fallback)
	)
	for i = 0; i < len(weights); i++ {
		w = weights[i]
		if w > 0 {
			last = i
		}
		cum += w
		if cum > u {
			return i, nil
		}
	}

	// Accumulated rounding can leave cum marginally below u at the end;
	// fall back to the last positive-weight index.
	return last, nil
}
