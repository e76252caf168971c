// SPDX-License-Identifier: MIT
// Package matrix: centralized shape validators shared by the kernels.
// Validators return sentinels from errors.go and never panic.

package matrix

// ValidateNotNil rejects nil Matrix values (typed-nil *Dense included).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape rejects operand pairs with mismatched dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquare rejects non-square matrices and returns the order n.
// Complexity: O(1).
func ValidateSquare(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, err
	}
	var (
		nr = m.Rows()
		nc = m.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}

	return nr, nil
}
