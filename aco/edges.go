// Package aco - edge and cost utilities shared by the optimizer and its tests.
//
// This file provides pure, stateless transforms over paths:
//   - Edges: lazy iteration over the directed edges of a path or tour,
//     restartable and re-derivable at any time.
//   - PathCost: total traversal cost with a Dense fast path and strict
//     per-edge validation.
//   - ValidatePermutation: the permutation invariant checker.
//
// Design:
//   - Strict sentinels from types.go on any invalid input.
//   - Defensive checks (Inf/NaN/non-positive) even after validateAll.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
package aco

import (
	"iter"
	"math"

	"github.com/katalvlaran/antsys/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// Edges yields the directed (from, to) pairs of path in order: n-1 pairs for
// an open path, n pairs when closed is true (the last pair returns to
// path[0], closing the cycle). The sequence is lazy and finite; ranging over
// it again re-derives it from scratch.
//
// Complexity: O(1) per yielded pair, O(1) space.
func Edges(path []int, closed bool) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		var i int
		for i = 0; i+1 < len(path); i++ {
			if !yield(path[i], path[i+1]) {
				return
			}
		}
		if closed && len(path) > 1 {
			yield(path[len(path)-1], path[0])
		}
	}
}

// PathCost sums dist over the edges of path: the open-path cost, or the full
// cycle cost including the closing edge when closed is true.
//
// Contract:
//   - len(path) ≥ 2; every index within [0..n-1] (n = matrix order).
//   - Each traversed entry must be finite and strictly positive, otherwise
//     ErrDegenerateDistance — a stochastic path must never silently absorb
//     an undefined edge.
//
// Complexity: O(len(path)) time, O(1) space.
func PathCost(dist matrix.Matrix, path []int, closed bool) (float64, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}
	if len(path) < 2 {
		return 0, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}

	if d := asDense(dist); d != nil {
		return pathCostDense(d, path, closed, nr)
	}

	return pathCostGeneric(dist, path, closed, nr)
}

// pathCostDense accumulates edge costs over the flat Dense buffer.
//
// Complexity: O(len(path)).
func pathCostDense(d *matrix.Dense, path []int, closed bool, n int) (float64, error) {
	var (
		sum  float64   // running total
		row  []float64 // current source row
		u, v int       // edge endpoints
		w    float64   // edge weight
		i    int       // loop iterator
		L    = len(path) - 1
		err  error
	)

	for i = 0; i <= L; i++ {
		if i == L {
			if !closed {
				break
			}
			u, v = path[L], path[0] // closing edge of the tour
		} else {
			u, v = path[i], path[i+1]
		}

		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrNodeOutOfRange
		}
		row, err = d.RowView(u)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		w = row[v]
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return 0, ErrDegenerateDistance
		}

		sum += w
	}

	return round1e9(sum), nil
}

// pathCostGeneric accumulates edge costs through the Matrix interface by
// ranging over the lazy edge sequence. Same checks as the Dense path.
//
// Complexity: O(len(path)).
func pathCostGeneric(m matrix.Matrix, path []int, closed bool, n int) (float64, error) {
	var (
		sum float64
		w   float64
		err error
	)

	for u, v := range Edges(path, closed) {
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrNodeOutOfRange
		}
		w, err = m.At(u, v)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return 0, ErrDegenerateDistance
		}

		sum += w
	}

	return round1e9(sum), nil
}

// ValidatePermutation checks that path is a permutation of {0..n-1} of
// length n: full coverage, no repeats. It allocates a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(path []int, n int) error {
	if n <= 0 || len(path) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = path[i]
		// Out-of-range element violates the coverage contract.
		if v < 0 || v >= n {
			return ErrNodeOutOfRange
		}
		// Duplicate violates the bijection contract.
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// Keeps costs stable across platforms without affecting correctness.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
