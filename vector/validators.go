// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Single source of truth for size, nil and shape checks.
//   - Return plain sentinels; call sites add their own context.

package vector

// ValidateSize checks that size lies in [1, MaxVectorSize].
func ValidateSize(size int) error {
	return ValidateSizeBound(size, MaxVectorSize)
}

// ValidateSizeBound checks that size lies in [1, limit]. Containers built on
// Vector with a tighter limit (e.g. square matrices) reuse it.
func ValidateSizeBound(size, limit int) error {
	if size <= 0 || size > limit {
		return ErrInvalidSize
	}

	return nil
}

// ValidateNotNil returns ErrNilVector when v is nil.
func ValidateNotNil[T any](v *Vector[T]) error {
	if v == nil {
		return ErrNilVector
	}

	return nil
}

// ValidateSameSize is the composite NotNil(a) → NotNil(b) → a.Size()==b.Size().
func ValidateSameSize[T any](a, b *Vector[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.sz != b.sz {
		return ErrDimensionMismatch
	}

	return nil
}
