// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for nil/empty/size checks used by every kernel.
//   - Return plain sentinels; call sites wrap them with their op tag.

package matrix

import "github.com/katalvlaran/dynmat/vector"

// ValidateSize checks that size lies in [1, MaxMatrixSize].
func ValidateSize(size int) error {
	return vector.ValidateSizeBound(size, MaxMatrixSize)
}

// ValidateNotNil returns ErrNilMatrix when m is nil.
func ValidateNotNil[T any](m *Matrix[T]) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateNotEmpty is NotNil → Size()>0. A moved-from matrix fails with
// ErrInvalidSize, the same error its re-construction would produce.
func ValidateNotEmpty[T any](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Size() == 0 {
		return ErrInvalidSize
	}

	return nil
}

// ValidateSameSize is NotEmpty(a) → NotEmpty(b) → a.Size()==b.Size().
func ValidateSameSize[T any](a, b *Matrix[T]) error {
	if err := ValidateNotEmpty(a); err != nil {
		return err
	}
	if err := ValidateNotEmpty(b); err != nil {
		return err
	}
	if a.Size() != b.Size() {
		return ErrDimensionMismatch
	}

	return nil
}
