// Package aco - stochastic path construction (one ant, one path).
package aco

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/antsys/matrix"
)

// Travel builds one complete path over a square desirability matrix prob:
// a permutation of {0..n-1} beginning at start and, when end != None,
// ending at end. This is the engine's secondary entry point, usable on any
// non-negative matrix independently of Optimize.
//
// Per step the ant sits on `current` and chooses among the not-yet-visited
// nodes using row prob[current]:
//   - with probability explore: a roulette draw proportional to the row
//     weights (exploration);
//   - otherwise: the unvisited node maximizing the weight, lowest index on
//     ties (exploitation).
//
// A mandated end distinct from start is removed from the candidate set up
// front and re-admitted for the final step only, so it is chosen last and
// the output is still a full permutation — no node skipped or duplicated.
// end == start is accepted and behaves like end == None (the closing edge
// of a tour is a costing concern, not a construction one).
//
// Contract:
//   - prob non-nil, square, n ≥ 2; entries ≥ 0 (negative ⇒ ErrNegativeWeight
//     surfaced by the sampler);
//   - explore ∈ [0,1] (ErrInvalidParameter);
//   - start ∈ [0..n-1]; end ∈ [0..n-1] or None (ErrNodeOutOfRange);
//   - rng may be nil ⇒ deterministic default stream.
//
// This is the sole place randomness enters the construction of a path.
//
// Complexity: O(n²) time, O(n) space.
func Travel(prob matrix.Matrix, explore float64, start, end int, rng *rand.Rand) ([]int, error) {
	// Stage 1: validation.
	if matrix.ValidateNotNil(prob) != nil {
		return nil, ErrNilMatrix
	}
	var (
		nr = prob.Rows()
		nc = prob.Cols()
	)
	if nr != nc || nr <= 0 {
		return nil, ErrNonSquare
	}
	if nr < 2 {
		return nil, ErrDimensionMismatch
	}
	var n = nr
	if explore < 0 || explore > 1 || math.IsNaN(explore) {
		return nil, ErrInvalidParameter
	}
	if start < 0 || start >= n {
		return nil, ErrNodeOutOfRange
	}
	if end != None && (end < 0 || end >= n) {
		return nil, ErrNodeOutOfRange
	}

	var r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	// Stage 2: marker set. The start is visited; a distinct mandated end is
	// deferred (marked visited now, re-admitted at the last step).
	var (
		visited  = make([]bool, n) // membership array local to this call
		deferEnd = end != None && end != start
	)
	visited[start] = true
	if deferEnd {
		visited[end] = true
	}

	// Stage 3: construction loop.
	var (
		path    = make([]int, n)        // output permutation
		cand    = make([]int, 0, n)     // unvisited candidates this step
		weights = make([]float64, 0, n) // matching desirability weights
		current = start                 // ant position
		dense   = asDense(prob)         // fast row access when available
		row     []float64               // current desirability row
		step    int                     // path position being filled
		j       int                     // candidate scan iterator
		pick    int                     // chosen candidate offset / node
		err     error
	)
	path[0] = start

	for step = 1; step < n; step++ {
		// Re-admit the deferred end exactly once, for the final step.
		if deferEnd && step == n-1 {
			visited[end] = false
		}

		// Gather the unvisited candidates and their weights from the row
		// of the current node.
		cand = cand[:0]
		weights = weights[:0]
		if dense != nil {
			row, err = dense.RowView(current)
			if err != nil {
				return nil, ErrDimensionMismatch
			}
			for j = 0; j < n; j++ {
				if !visited[j] {
					cand = append(cand, j)
					weights = append(weights, row[j])
				}
			}
		} else {
			var w float64
			for j = 0; j < n; j++ {
				if visited[j] {
					continue
				}
				w, err = prob.At(current, j)
				if err != nil {
					return nil, ErrDimensionMismatch
				}
				cand = append(cand, j)
				weights = append(weights, w)
			}
		}

		// Explore or exploit. The roulette call consumes one draw; the
		// branch decision itself consumes another. Both come from r only.
		if r.Float64() < explore {
			pick, err = Roulette(weights, r)
			if err != nil {
				return nil, err
			}
			pick = cand[pick]
		} else {
			pick = greedyPick(cand, weights)
		}

		path[step] = pick
		visited[pick] = true
		current = pick
	}

	return path, nil
}

// greedyPick returns the candidate with the maximal weight, lowest index on
// ties (cand is in ascending node order, so the first maximum wins).
//
// Complexity: O(len(cand)).
func greedyPick(cand []int, weights []float64) int {
	var (
		best  = cand[0]
		bestW = weights[0]
		j     int
	)
	for j = 1; j < len(cand); j++ {
		if weights[j] > bestW {
			best = cand[j]
			bestW = weights[j]
		}
	}

	return best
}

// asDense unwraps the Dense fast path or returns nil for generic matrices.
func asDense(m matrix.Matrix) *matrix.Dense {
	if d, ok := m.(*matrix.Dense); ok {
		return d
	}

	return nil
}
