// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// validatorErrorf tags a validator failure with its name.
func validatorErrorf(name string, err error) error {
	return fmt.Errorf("%s: %w", name, err)
}

// ValidateNotNil rejects a nil Matrix (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and n×n.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateZeroDiagonal ensures every diagonal entry of a square m is 0.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return err
		}
		if v != 0 {
			return validatorErrorf("ValidateZeroDiagonal", fmt.Errorf("(%d,%d)=%g: %w", i, i, v, ErrNonZeroDiagonal))
		}
	}

	return nil
}
