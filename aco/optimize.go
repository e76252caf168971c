// Package aco - the colony optimizer (primary entry point).
//
// This file owns the iterative pheromone loop described in doc.go. The
// pheromone matrix τ is created here, mutated only here, and only between
// iteration barriers: during ant construction it is read-only (through the
// per-iteration probability product), and all deposits/evaporation happen
// after every ant of the iteration has finished and been ranked.
package aco

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"sync"

	"github.com/katalvlaran/antsys/matrix"
)

// Optimize approximates the cheapest Hamiltonian path (or tour, when
// opts.Tour) over dist and returns the best solution found across all
// iterations — never merely the last iteration's.
//
// Contracts:
//   - dist: square order n ≥ 2, zero diagonal, strictly positive finite
//     off-diagonal entries (see validateAll; all violations are rejected
//     eagerly with sentinels, before any iteration runs).
//   - opts: start from DefaultOptions; numeric bounds per Options docs.
//   - The returned Result.Path is always a verified permutation of {0..n-1};
//     Result.Cost is monotonically non-increasing over the run's iterations.
//
// Determinism: identical (dist, opts) including Seed ⇒ identical Result,
// with or without AntWorkers.
//
// Complexity: O(MaxIter · n³) time worst-case (n ants × O(n²) construction),
// O(n²) space.
func Optimize(dist matrix.Matrix, opts Options) (Result, error) {
	// Stage 1: eager validation (configuration + matrix + endpoints).
	n, err := validateAll(dist, opts)
	if err != nil {
		return Result{}, err
	}

	// Stage 2: static state. η is derived once and never mutated; τ starts
	// saturated at TauMax so the first iteration explores freely.
	eta, err := desirability(dist, opts.Beta)
	if err != nil {
		return Result{}, err
	}
	tau, err := matrix.NewDense(n, n)
	if err != nil {
		return Result{}, ErrDimensionMismatch
	}
	if err = matrix.Fill(tau, opts.TauMax); err != nil {
		return Result{}, ErrInvalidParameter
	}
	prob, err := matrix.NewDense(n, n) // reused τ∘η buffer
	if err != nil {
		return Result{}, ErrDimensionMismatch
	}

	var (
		rng      = rngFromSeed(opts.Seed)     // root randomness source
		ants     = make([]*rand.Rand, n)      // per-ant substreams, re-derived each iteration
		sols     = make([]solution, n)        // this iteration's scored candidates
		topK     = eliteCount(opts.TopPercAnts, n)
		out      = opts.Out                   // Verbose sink
		best     = Result{Cost: math.Inf(1)}  // best-so-far state
		noImprov int                          // stagnation counter
		iter     int                          // iteration index
		a        int                          // ant index
	)
	if out == nil {
		out = os.Stdout
	}

	// Stage 3: the loop.
	for iter = 0; iter < opts.MaxIter; iter++ {
		// 3.1: combined desirability for this iteration (read-only below).
		if err = matrix.HadamardInto(prob, tau, eta); err != nil {
			return Result{}, ErrDimensionMismatch
		}

		// 3.2: derive every ant's independent stream BEFORE any ant runs;
		// this is what keeps parallel evaluation bit-identical to sequential.
		for a = 0; a < n; a++ {
			ants[a] = deriveRNG(rng, uint64(a))
		}

		// 3.3: one path per ant, sequential or behind a WaitGroup barrier.
		if err = runAnts(dist, prob, opts, n, ants, sols); err != nil {
			return Result{}, err
		}

		// 3.4: rank ascending by cost, ant index as the deterministic
		// tie-breaker under equal costs.
		sort.Slice(sols, func(x, y int) bool {
			if sols[x].cost != sols[y].cost {
				return sols[x].cost < sols[y].cost
			}
			return sols[x].ant < sols[y].ant
		})

		// 3.5: strict improvement tracking.
		if sols[0].cost < best.Cost {
			best.Cost = sols[0].cost
			best.Path = append(best.Path[:0], sols[0].path...)
			best.FoundAt = iter
			noImprov = 0
			if opts.Verbose {
				fmt.Fprintf(out, "aco: iteration %d: new best cost %.9f\n", iter, best.Cost)
			}
		} else {
			noImprov++
		}

		// 3.6: elitist deposit — the topK cheapest candidates reinforce
		// every edge they traversed by Q/cost (cheaper ⇒ stronger).
		for a = 0; a < topK; a++ {
			deposit(tau, sols[a].path, opts.Tour, opts.Q/sols[a].cost)
		}

		// 3.7: stagnation reset or bounded evaporation. Either branch
		// leaves every τ value inside [TauMin, TauMax].
		if noImprov > opts.ResetIter {
			if err = matrix.Fill(tau, opts.TauMax); err != nil {
				return Result{}, ErrInvalidParameter
			}
			noImprov = 0
		} else if err = matrix.ScaleClampInPlace(tau, 1-opts.Rho, opts.TauMin, opts.TauMax); err != nil {
			return Result{}, ErrInvalidParameter
		}
	}
	best.Iterations = opts.MaxIter

	// Stage 4: final invariant guard before handing the result out.
	if err = ValidatePermutation(best.Path, n); err != nil {
		return Result{}, err
	}

	return best, nil
}

// eliteCount derives the depositing share: max(1, ⌊perc·n⌋), clamped to n so
// tiny colonies with generous percentages cannot overrun the candidate list.
//
// Complexity: O(1).
func eliteCount(perc float64, n int) int {
	var k = int(math.Floor(perc * float64(n)))
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}

	return k
}

// runAnts evaluates all n ants of one iteration into sols.
//
// Each ant a: resolves its endpoints (mandated, or drawn from its own
// stream when unset — end := start in tour mode), builds a path over the
// shared read-only prob, and scores it against dist. sols[a] is written by
// exactly one goroutine; τ is untouched until every ant has finished.
//
// Complexity: O(n³) time across ants, O(n) space per live ant.
func runAnts(dist matrix.Matrix, prob *matrix.Dense, opts Options, n int, ants []*rand.Rand, sols []solution) error {
	var workers = opts.AntWorkers
	if workers > n {
		workers = n
	}

	if workers <= 1 {
		var (
			a   int
			err error
		)
		for a = 0; a < n; a++ {
			if err = runAnt(dist, prob, opts, n, a, ants[a], sols); err != nil {
				return err
			}
		}

		return nil
	}

	// Parallel path: contiguous ant ranges per worker, full barrier before
	// the caller ranks or deposits anything.
	var (
		wg   sync.WaitGroup
		errs = make([]error, workers)
		per  = (n + workers - 1) / workers
		w    int
	)
	for w = 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			var (
				lo = w * per
				hi = lo + per
				a  int
			)
			if hi > n {
				hi = n
			}
			for a = lo; a < hi; a++ {
				if err := runAnt(dist, prob, opts, n, a, ants[a], sols); err != nil {
					errs[w] = err
					return
				}
			}
		}(w)
	}
	wg.Wait()

	for w = 0; w < workers; w++ {
		if errs[w] != nil {
			return errs[w]
		}
	}

	return nil
}

// runAnt builds and scores the path of ant a into sols[a].
//
// Complexity: O(n²) time, O(n) space.
func runAnt(dist matrix.Matrix, prob *matrix.Dense, opts Options, n, a int, rng *rand.Rand, sols []solution) error {
	// Resolve endpoints for this ant. A free-roaming ant draws its start
	// from its own stream; tour mode pins the end to the start.
	var (
		start = opts.StartNode
		end   = opts.EndNode
	)
	if start == None {
		start = rng.Intn(n)
		if opts.Tour {
			end = start
		}
	}

	path, err := Travel(prob, opts.Explore, start, end, rng)
	if err != nil {
		return err
	}
	cost, err := PathCost(dist, path, opts.Tour)
	if err != nil {
		return err
	}
	sols[a] = solution{ant: a, cost: cost, path: path}

	return nil
}

// deposit adds amount to τ at every directed edge of path (closing edge
// included in tour mode). Deposits may momentarily exceed TauMax; the
// caller's clamp (or reset) restores the trail limits in the same iteration.
//
// Complexity: O(len(path)).
func deposit(tau *matrix.Dense, path []int, closed bool, amount float64) {
	var row []float64
	for u, v := range Edges(path, closed) {
		row, _ = tau.RowView(u) // u is a verified node index
		row[v] += amount
	}
}
