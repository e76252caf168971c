// Package aco - solver configuration.
//
// Options follows the plain-struct-plus-DefaultOptions convention: every
// field has a documented default, zero configuration is valid, and all
// bounds are enforced by validateAll before the first iteration (sentinels
// from types.go, never silent coercion).
package aco

import "io"

// DEFAULTS - single source of truth for DefaultOptions.
const (
	// DefaultBeta is the distance-importance exponent of the heuristic matrix.
	DefaultBeta = 2.0

	// DefaultRho is the evaporation fraction applied to pheromone each iteration.
	DefaultRho = 0.1

	// DefaultExplore is the per-step probability of a roulette (exploration)
	// move during path construction; otherwise the ant moves greedily.
	DefaultExplore = 0.1

	// DefaultQ scales pheromone deposits: each elite solution adds Q/cost.
	DefaultQ = 1.0

	// DefaultTauMin / DefaultTauMax bound pheromone levels (Max-Min trail
	// limits). TauMin also floors sampling weights away from zero.
	DefaultTauMin = 1.0
	DefaultTauMax = 10.0

	// DefaultMaxIter is the number of colony iterations per run.
	DefaultMaxIter = 20

	// DefaultResetIter is the stagnation budget: once the non-improvement
	// counter exceeds it, pheromone resets to TauMax.
	DefaultResetIter = 10

	// DefaultTopPercAnts is the elite share: ⌊TopPercAnts·n⌋ cheapest
	// solutions (at least one, at most n) deposit each iteration.
	DefaultTopPercAnts = 0.05
)

// Options configures Optimize. The zero value is NOT the default; start from
// DefaultOptions and override what you need.
type Options struct {
	// StartNode mandates the first node of every path; None ⇒ each ant
	// draws its own start uniformly at random.
	StartNode int

	// EndNode mandates the last node (open-path mode). None ⇒ free end.
	// StartNode and EndNode must be set together or not at all.
	EndNode int

	// Tour closes the cycle back to the start and pays the closing edge.
	// With explicit endpoints, tour mode requires StartNode == EndNode.
	Tour bool

	// Beta ≥ 0 — distance-importance exponent (see DefaultBeta).
	Beta float64

	// Rho ∈ [0,1] — evaporation fraction.
	Rho float64

	// Explore ∈ [0,1] — per-step exploration probability.
	Explore float64

	// Q > 0 — deposit scale.
	Q float64

	// TauMin, TauMax — pheromone bounds, 0 < TauMin ≤ TauMax.
	TauMin float64
	TauMax float64

	// MaxIter ≥ 1 — iteration budget (the sole termination condition).
	MaxIter int

	// ResetIter ≥ 0 — stagnation budget before a full pheromone reset.
	ResetIter int

	// TopPercAnts ∈ (0,1] — elite share of depositing ants.
	TopPercAnts float64

	// Seed drives all randomness; 0 ⇒ a fixed default stream, so runs are
	// reproducible by default.
	Seed int64

	// Verbose emits a one-line notice to Out on every strict improvement.
	Verbose bool

	// Out receives Verbose notices; nil ⇒ os.Stdout.
	Out io.Writer

	// AntWorkers > 1 evaluates ants concurrently with that many goroutines.
	// Results are identical to the sequential path for the same Seed.
	// 0 or 1 ⇒ sequential.
	AntWorkers int
}

// DefaultOptions returns the documented defaults: no mandated endpoints,
// open-path mode, sequential evaluation, quiet.
func DefaultOptions() Options {
	return Options{
		StartNode:   None,
		EndNode:     None,
		Tour:        false,
		Beta:        DefaultBeta,
		Rho:         DefaultRho,
		Explore:     DefaultExplore,
		Q:           DefaultQ,
		TauMin:      DefaultTauMin,
		TauMax:      DefaultTauMax,
		MaxIter:     DefaultMaxIter,
		ResetIter:   DefaultResetIter,
		TopPercAnts: DefaultTopPercAnts,
		Seed:        0,
		Verbose:     false,
		Out:         nil,
		AntWorkers:  0,
	}
}
