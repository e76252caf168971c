// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric substrate for the ant-colony
// optimizer: a row-major Dense matrix plus the small set of element-wise
// kernels the pheromone model feeds on.
//
// Surface:
//   - Matrix     — minimal read/write interface (Rows/Cols/At/Set/Clone).
//   - Dense      — row-major float64 implementation with flat backing storage
//     and a zero-copy RowView for hot loops.
//   - Hadamard / HadamardInto — element-wise product (probability = τ ∘ η).
//   - Fill                    — constant fill (pheromone init / reset).
//   - ScaleClampInPlace       — multiplicative decay bounded to [lo, hi]
//     (evaporation under Max-Min trail limits).
//   - ColumnMedians           — per-column medians (heuristic derivation).
//
// Design principles:
//   - Deterministic: fixed i→j loop orders, no hidden randomness.
//   - Strict sentinels: all user-triggered failures return errors from
//     errors.go; panics are reserved for programmer errors (none today).
//   - Hot-path discipline: Dense fast paths operate on one flat buffer;
//     generic Matrix fallbacks keep the interface honest.
package matrix
