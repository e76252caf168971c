// SPDX-License-Identifier: MIT
// Package matrix: element-wise kernels for the pheromone model.
//
// Purpose:
//   - Provide the few tight loops the optimizer repeats every iteration
//     (probability product, evaporation, reset) plus the one statistical
//     helper it runs once (column medians for the heuristic matrix).
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast paths operate on a single flat buffer (row-major).
//   - No hidden allocations beyond documented outputs; O(r*c) time.

package matrix

import (
	"math"
	"sort"
)

// Hadamard returns the element-wise product a ∘ b as a fresh Dense.
// The optimizer uses it to combine pheromone and heuristic desirability.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time and space.
func Hadamard(a, b Matrix) (*Dense, error) {
	// Validate both operands are non-nil and have identical shapes.
	if err := ValidateSameShape(a, b); err != nil {
		return nil, err
	}

	// Allocate the result Dense with the same shape.
	out, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, err
	}
	if err = HadamardInto(out, a, b); err != nil {
		return nil, err
	}

	return out, nil
}

// HadamardInto computes dst = a ∘ b without allocating.
// Intended for per-iteration reuse of one probability buffer.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time, O(1) space.
func HadamardInto(dst *Dense, a, b Matrix) error {
	if err := ValidateNotNil(dst); err != nil {
		return err
	}
	if err := ValidateSameShape(a, b); err != nil {
		return err
	}
	if dst.r != a.Rows() || dst.c != a.Cols() {
		return ErrDimensionMismatch
	}

	// Fast path: both operands are *Dense → operate on flat slices directly.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var (
				n   = len(dst.data) // total number of elements
				idx int             // flat iterator
			)
			for idx = 0; idx < n; idx++ {
				dst.data[idx] = da.data[idx] * db.data[idx]
			}

			return nil
		}
	}

	// Generic fallback via At (still deterministic i→j order).
	var (
		i, j   int     // loop indices
		av, bv float64 // operand entries
		err    error
	)
	for i = 0; i < dst.r; i++ {
		for j = 0; j < dst.c; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return err
			}
			bv, err = b.At(i, j)
			if err != nil {
				return err
			}
			dst.data[i*dst.c+j] = av * bv
		}
	}

	return nil
}

// Fill assigns v to every element of m in place.
// The optimizer uses it for pheromone initialization and stagnation resets.
//
// Errors: ErrNilMatrix, ErrNaNInf for non-finite v.
// Complexity: O(r*c) time, O(1) space.
func Fill(m *Dense, v float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}

	var i int
	for i = 0; i < len(m.data); i++ {
		m.data[i] = v
	}

	return nil
}

// ScaleClampInPlace computes m = clamp(m*factor, lo, hi) element-wise.
// One pass implements pheromone evaporation under Max-Min trail limits:
// factor = 1-rho, lo = tauMin, hi = tauMax.
//
// Errors: ErrNilMatrix; ErrNaNInf for non-finite factor/bounds;
// ErrDimensionMismatch when lo > hi.
// Complexity: O(r*c) time, O(1) space.
func ScaleClampInPlace(m *Dense, factor, lo, hi float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if math.IsNaN(factor) || math.IsInf(factor, 0) ||
		math.IsNaN(lo) || math.IsInf(lo, 0) ||
		math.IsNaN(hi) || math.IsInf(hi, 0) {
		return ErrNaNInf
	}
	if lo > hi {
		return ErrDimensionMismatch
	}

	var (
		i int     // flat iterator
		v float64 // scratch value
	)
	for i = 0; i < len(m.data); i++ {
		v = m.data[i] * factor
		if v < lo {
			v = lo
		}
		if v > hi {
			v = hi
		}
		m.data[i] = v
	}

	return nil
}

// ColumnMedians returns the median of each column of a square matrix.
// When skipDiagonal is true, entry (j, j) is excluded from column j —
// the mode used to derive edge desirability, where the self-distance on
// the diagonal says nothing about travel into node j.
//
// Median convention: middle element for odd counts, arithmetic mean of
// the two middle elements for even counts.
//
// Errors: ErrNilMatrix, ErrNonSquare; ErrBadShape when skipDiagonal leaves
// a column empty (n == 1).
// Complexity: O(n² log n) time, O(n) extra space (one reusable column buffer).
func ColumnMedians(m Matrix, skipDiagonal bool) ([]float64, error) {
	n, err := ValidateSquare(m)
	if err != nil {
		return nil, err
	}
	if skipDiagonal && n < 2 {
		return nil, ErrBadShape
	}

	var (
		out = make([]float64, n)    // one median per column
		col = make([]float64, 0, n) // reusable gather buffer
		i   int                     // source (row) iterator
		j   int                     // column iterator
		v   float64                 // scratch entry
		k   int                     // sorted length
	)

	d, dense := m.(*Dense)
	for j = 0; j < n; j++ {
		col = col[:0]
		for i = 0; i < n; i++ {
			if skipDiagonal && i == j {
				continue
			}
			if dense {
				v = d.data[i*n+j]
			} else {
				v, err = m.At(i, j)
				if err != nil {
					return nil, err
				}
			}
			col = append(col, v)
		}
		sort.Float64s(col)
		k = len(col)
		if k%2 == 1 {
			out[j] = col[k/2]
		} else {
			out[j] = (col[k/2-1] + col[k/2]) / 2
		}
	}

	return out, nil
}
