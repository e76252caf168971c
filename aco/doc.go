// Package aco approximates shortest Hamiltonian paths and tours on dense
// distance matrices with an ant-colony metaheuristic blending Max-Min Ant
// System (bounded trails, stagnation reset), Elitist Ant System (only the
// top-ranked solutions deposit) and Ant Colony System (explicit
// explore-vs-exploit choice per construction step).
//
// Model, per iteration:
//
//  1. P = τ ∘ η — pheromone times static heuristic desirability.
//  2. One ant per node builds a candidate path over P (Travel).
//  3. Candidates are scored (PathCost) and ranked ascending.
//  4. The strict best-so-far is tracked across iterations.
//  5. The top ⌈topPercAnts·n⌉ candidates deposit Q/cost on their edges.
//  6. τ evaporates by (1−rho) and is clamped to [tauMin, tauMax]; after
//     more than resetIter non-improving iterations τ resets to tauMax.
//
// Conventions:
//   - Node indices are 0-based everywhere.
//   - dist.At(from, to) is the cost of the directed edge from→to; the
//     matrix need not be symmetric, but every off-diagonal entry must be
//     finite and strictly positive, and the diagonal must be zero.
//   - A path is a permutation of {0..n-1}; a tour additionally pays the
//     closing edge back to its first node (the start is never duplicated).
//
// Guarantees:
//   - Deterministic: same matrix + same Options.Seed ⇒ identical Result,
//     sequential or parallel (per-ant RNG substreams are derived up front).
//   - Strict sentinels: all misconfiguration is rejected before iteration 1;
//     no panics on user input, no logging (Verbose writes to Options.Out only).
//   - Monotone: the returned cost never exceeds any intermediate best.
//
// Entry points: Optimize (full solver) and Travel (one path over an
// arbitrary desirability matrix, exposed for testing and composition).
package aco
