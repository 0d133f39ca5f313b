// SPDX-License-Identifier: MIT
// Package matrix - public builders and facades.
//
// Purpose:
//   - Intention-revealing constructors on top of New.
//   - Thin aliases that delegate to the canonical kernels in methods.go,
//     with no logic of their own.

package matrix

import "github.com/katalvlaran/dynmat/vector"

// ---------- Constructors ----------

// NewZeros is an alias of New with an intention-revealing name.
func NewZeros[T any](n int) (*Matrix[T], error) { return New[T](n) }

// NewIdentity returns I_n: ones on the diagonal, zeros elsewhere.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity[T Number](n int) (*Matrix[T], error) {
	I, err := New[T](n)
	if err != nil {
		return nil, opErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		*I.Row(i).Elem(i) = T(1)
	}

	return I, nil
}

// NewFromRows copies a square [][]T into a new Matrix.
//
// Errors:
//   - ErrInvalidSize when len(rows) is 0 or exceeds MaxMatrixSize.
//   - ErrDimensionMismatch when some row's length differs from len(rows).
func NewFromRows[T any](rows [][]T) (*Matrix[T], error) {
	n := len(rows)
	if err := ValidateSize(n); err != nil {
		return nil, opErrorf(opFromRows, err)
	}
	built := make([]*vector.Vector[T], n)
	for i, src := range rows {
		if len(src) != n {
			return nil, opErrorf(opFromRows, matrixErrorf(ctxRowAt, i, len(src), ErrDimensionMismatch))
		}
		r, err := vector.FromSlice(src, n)
		if err != nil {
			return nil, opErrorf(opFromRows, err)
		}
		built[i] = r
	}
	m, err := fromRows(built)
	if err != nil {
		return nil, opErrorf(opFromRows, err)
	}

	return m, nil
}

// IdentityLike returns the identity with the same dimension as m.
func IdentityLike[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotEmpty(m); err != nil {
		return nil, opErrorf(opIdentity, err)
	}

	return NewIdentity[T](m.Size())
}

// ---------- Facades (1:1 to kernels) ----------

// Sum is an alias for Add.
func Sum[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return Sub(a, b) }

// Product is an alias for Mul.
func Product[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return Mul(a, b) }

// ScaleBy is an alias for MulScalar.
func ScaleBy[T Number](m *Matrix[T], s T) (*Matrix[T], error) { return MulScalar(m, s) }

// MatVecMul is an alias for MulVec.
func MatVecMul[T Number](m *Matrix[T], v *vector.Vector[T]) (*vector.Vector[T], error) {
	return MulVec(m, v)
}
