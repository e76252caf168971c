// Package aco - validation utilities shared by the solver entry points.
//
// This file contains small, tight helpers that:
//  1. Validate Options combinations (numeric bounds, endpoint pairing).
//  2. Validate distance matrices (shape, diagonal, positivity, finiteness).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix order; no hidden allocations.
package aco

import (
	"math"

	"github.com/katalvlaran/antsys/matrix"
)

// diagTol is the structural tolerance for the zero-diagonal check.
const diagTol = 1e-12

// validateAll verifies Options + distance matrix + endpoint configuration.
// It returns n (matrix order) on success. Runs eagerly, before iteration 1.
//
// Contract:
//   - dist must be non-nil, square, of order n ≥ 2.
//   - every off-diagonal entry strictly positive and finite; diagonal ≈ 0.
//   - StartNode/EndNode both None or both in [0..n-1]; equal in tour mode.
//
// Complexity: O(n²) time, O(1) space.
func validateAll(dist matrix.Matrix, opts Options) (int, error) {
	var (
		n   int
		err error
	)

	// Stage 1: Options-only sanity.
	if err = validateOptionsStandalone(opts); err != nil {
		return 0, err
	}

	// Stage 2: matrix shape and entry policy.
	n, err = validateDistMatrix(dist)
	if err != nil {
		return 0, err
	}

	// Stage 3: endpoint pairing and range (after n is known).
	if err = validateEndpoints(n, opts.StartNode, opts.EndNode, opts.Tour); err != nil {
		return 0, err
	}

	return n, nil
}

// validateOptionsStandalone checks numeric bounds of Options without
// referencing a matrix. Every violation maps to ErrInvalidParameter.
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options) error {
	// Exponent of the heuristic: any non-negative value is meaningful.
	if opts.Beta < 0 || math.IsNaN(opts.Beta) || math.IsInf(opts.Beta, 0) {
		return ErrInvalidParameter
	}
	// Evaporation is a fraction of the trail; outside [0,1] it would grow
	// or negate pheromone.
	if opts.Rho < 0 || opts.Rho > 1 || math.IsNaN(opts.Rho) {
		return ErrInvalidParameter
	}
	// Exploration is a probability.
	if opts.Explore < 0 || opts.Explore > 1 || math.IsNaN(opts.Explore) {
		return ErrInvalidParameter
	}
	// Deposits must push trails upward.
	if opts.Q <= 0 || math.IsNaN(opts.Q) || math.IsInf(opts.Q, 0) {
		return ErrInvalidParameter
	}
	// Trail limits: TauMin > 0 is what keeps every sampling weight positive.
	if opts.TauMin <= 0 || opts.TauMin > opts.TauMax ||
		math.IsNaN(opts.TauMin) || math.IsNaN(opts.TauMax) || math.IsInf(opts.TauMax, 0) {
		return ErrInvalidParameter
	}
	if opts.MaxIter < 1 {
		return ErrInvalidParameter
	}
	if opts.ResetIter < 0 {
		return ErrInvalidParameter
	}
	if opts.TopPercAnts <= 0 || opts.TopPercAnts > 1 || math.IsNaN(opts.TopPercAnts) {
		return ErrInvalidParameter
	}
	if opts.AntWorkers < 0 {
		return ErrInvalidParameter
	}

	return nil
}

// validateEndpoints enforces the both-or-neither pairing, index ranges and
// the tour-mode equality constraint.
//
// Complexity: O(1).
func validateEndpoints(n, start, end int, tour bool) error {
	// Exactly one endpoint set is an invalid configuration.
	if (start == None) != (end == None) {
		return ErrEndpointMismatch
	}
	if start == None {
		return nil
	}
	if start < 0 || start >= n {
		return ErrNodeOutOfRange
	}
	if end < 0 || end >= n {
		return ErrNodeOutOfRange
	}
	// A tour leaves and re-enters the same node; explicit endpoints must agree.
	if tour && start != end {
		return ErrEndpointMismatch
	}

	return nil
}

// validateDistMatrix performs full distance matrix validation:
//   - non-nil, square, n ≥ 2,
//   - diagonal ≈ 0 (|a_ii| ≤ diagTol),
//   - every off-diagonal entry strictly positive and finite.
//
// Zero (and negative, NaN, ±Inf) off-diagonal entries are rejected as
// degenerate: the heuristic divides by them and the median would be
// polluted, so they cannot be silently carried into the run.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDistMatrix(dist matrix.Matrix) (int, error) {
	// Stage 1: shape checks (non-nil, square, non-trivial).
	if matrix.ValidateNotNil(dist) != nil {
		return 0, ErrNilMatrix
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	if nr < 2 {
		return 0, ErrDimensionMismatch
	}
	var n = nr // the matrix order

	// Stage 2: diagonal and entry policy.
	var (
		i, j int     // loop indices
		v    float64 // matrix entry under inspection
		abs  float64 // scratch for |value|
		err  error
	)

	// Diagonal: a_ii ≈ 0 within diagTol, finite.
	for i = 0; i < n; i++ {
		v, err = dist.At(i, i)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrDegenerateDistance
		}
		abs = v
		if abs < 0 {
			abs = -abs // |a_ii| without allocations
		}
		if abs > diagTol {
			return 0, ErrDegenerateDistance
		}
	}

	// Off-diagonal scan: strictly positive, finite.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // already checked
			}
			v, err = dist.At(i, j)
			if err != nil {
				return 0, ErrDimensionMismatch
			}
			if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				return 0, ErrDegenerateDistance
			}
		}
	}

	return n, nil
}
