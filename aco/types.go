// Package aco - sentinel error set and result types.
//
// All user-triggered failures across the package return one of the sentinels
// below; callers match them with errors.Is. No fmt.Errorf wrapping on hot
// paths, no panics on user input.
package aco

import "errors"

// None marks an unset optional node argument (StartNode/EndNode, Travel's end).
const None = -1

var (
	// ErrNilMatrix is returned when a nil matrix is supplied.
	ErrNilMatrix = errors.New("aco: nil matrix")

	// ErrNonSquare signals a non-square distance or probability matrix.
	ErrNonSquare = errors.New("aco: matrix is not square")

	// ErrDimensionMismatch signals an invalid shape: matrices of order < 2,
	// paths of the wrong length, empty weight vectors, and the like.
	ErrDimensionMismatch = errors.New("aco: dimension mismatch")

	// ErrNodeOutOfRange signals a node index outside [0..n-1].
	ErrNodeOutOfRange = errors.New("aco: node index out of range")

	// ErrEndpointMismatch signals an inconsistent endpoint configuration:
	// exactly one of StartNode/EndNode set, or tour mode with distinct
	// explicit endpoints.
	ErrEndpointMismatch = errors.New("aco: inconsistent start/end configuration")

	// ErrInvalidParameter signals a numeric option outside its documented
	// range (beta, rho, explore, Q, tau bounds, iteration counts, top share).
	ErrInvalidParameter = errors.New("aco: parameter out of valid range")

	// ErrDegenerateDistance signals a distance entry that would make the
	// heuristic or cost computation undefined: zero, negative, NaN or ±Inf
	// off the diagonal, or a non-zero diagonal.
	ErrDegenerateDistance = errors.New("aco: degenerate distance matrix entry")

	// ErrNegativeWeight signals a negative (or NaN) sampling weight.
	ErrNegativeWeight = errors.New("aco: negative sampling weight")

	// ErrZeroWeights signals an all-zero weight vector: the roulette draw is
	// undefined. Optimize cannot hit this (tauMin > 0 floors every weight);
	// direct Travel/Roulette callers must guard their inputs.
	ErrZeroWeights = errors.New("aco: all sampling weights are zero")
)

// Result holds the outcome of one Optimize run.
type Result struct {
	// Path is the best visiting order found: a permutation of {0..n-1}.
	// In tour mode the closing edge Path[n-1]→Path[0] is paid by Cost but
	// the start node appears exactly once.
	Path []int

	// Cost is the total directed edge cost of Path (closing edge included
	// in tour mode), rounded to 1e-9 for cross-platform stability.
	Cost float64

	// FoundAt is the 0-based iteration index of the last strict improvement.
	FoundAt int

	// Iterations is the number of iterations executed (== MaxIter).
	Iterations int
}

// solution is one scored ant candidate within an iteration.
// ant doubles as a deterministic tie-breaker when costs collide.
type solution struct {
	ant  int
	cost float64
	path []int
}
