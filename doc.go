// Package antsys is an in-memory toolkit for stochastic path optimization
// on dense distance matrices — a population of simulated ants that build
// candidate Hamiltonian paths and tours, reinforced by pheromone trails.
//
// 🐜 What is antsys?
//
//	A small, deterministic-by-seed library that brings together:
//		• Colony optimizer: Max-Min / Elitist / Colony-System pheromone model
//		• Path builder: explore-vs-exploit stochastic construction (Travel)
//		• Weighted sampling: roulette-wheel selection over edge desirability
//		• Edge utilities: lazy edge iteration, tour/path cost scoring
//		• Matrix substrate: row-major Dense with element-wise kernels
//
// ✨ Why choose antsys?
//
//   - Reproducible – every random draw flows from one seedable source
//   - Rock-solid guarantees – strict validation, sentinel errors, no panics
//   - Pure Go – no cgo, no hidden deps
//   - Parallel-ready – independent per-ant RNG streams, single-writer pheromone
//
// Everything is organized under two subpackages:
//
//	aco/    — the optimization engine: Optimize, Travel, Edges, PathCost
//	matrix/ — dense numeric matrices + the kernels the engine feeds on
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
//	a 4-node complete instance; Optimize returns the cheapest visiting order.
//
// Dive into aco/doc.go for the full model, defaults and tuning notes.
//
//	go get github.com/katalvlaran/antsys/aco
package antsys
