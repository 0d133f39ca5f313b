// SPDX-License-Identifier: MIT

// Package matrix provides equality and arithmetic on Matrix values.
// All functions validate first, build the result in a fresh Matrix and never
// mutate their operands, so a failing call leaves both sides as they were.
// Row-level work is delegated to package vector.
package matrix

import "github.com/katalvlaran/dynmat/vector"

// Equal reports whether a and b have the same dimension and equal rows.
// Two nil matrices are equal; nil and non-nil are not.
func Equal[T comparable](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	n := a.Size()
	if n != b.Size() {
		return false
	}
	for i := 0; i < n; i++ {
		if !vector.Equal(a.Row(i), b.Row(i)) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Matrix[T]) bool { return !Equal(a, b) }

// fromRows wraps freshly built rows (already n×n) into a Matrix.
func fromRows[T any](rows []*vector.Vector[T]) (*Matrix[T], error) {
	outer, err := vector.New[*vector.Vector[T]](len(rows))
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		*outer.Elem(i) = r
	}

	return &Matrix[T]{rows: outer}, nil
}

// rowWise builds out.Row(i) = f(a.Row(i), b.Row(i)) for equal-size a and b.
func rowWise[T Number](a, b *Matrix[T], opTag string, f func(x, y *vector.Vector[T]) (*vector.Vector[T], error)) (*Matrix[T], error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, opErrorf(opTag, err)
	}
	n := a.Size()
	rows := make([]*vector.Vector[T], n)
	for i := 0; i < n; i++ {
		r, err := f(a.Row(i), b.Row(i))
		if err != nil {
			return nil, opErrorf(opTag, err)
		}
		rows[i] = r
	}
	out, err := fromRows(rows)
	if err != nil {
		return nil, opErrorf(opTag, err)
	}

	return out, nil
}

// Add returns a + b, or ErrDimensionMismatch when sizes differ.
// Complexity: O(n²).
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return rowWise(a, b, opAdd, vector.Add[T])
}

// Sub returns a - b, or ErrDimensionMismatch when sizes differ.
// Complexity: O(n²).
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return rowWise(a, b, opSub, vector.Sub[T])
}

// MulScalar returns s*m.
// Complexity: O(n²).
func MulScalar[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	if err := ValidateNotEmpty(m); err != nil {
		return nil, opErrorf(opMulScalar, err)
	}
	n := m.Size()
	rows := make([]*vector.Vector[T], n)
	for i := 0; i < n; i++ {
		r, err := vector.MulScalar(m.Row(i), s)
		if err != nil {
			return nil, opErrorf(opMulScalar, err)
		}
		rows[i] = r
	}
	out, err := fromRows(rows)
	if err != nil {
		return nil, opErrorf(opMulScalar, err)
	}

	return out, nil
}

// MulVec returns y = m·v where y[i] is the dot product of row i and v,
// built from the row's element-wise product and a sum.
//
// Errors:
//   - ErrNilMatrix / vector.ErrNilVector for nil operands.
//   - ErrDimensionMismatch unless m.Size() == v.Size().
//
// Complexity: O(n²).
func MulVec[T Number](m *Matrix[T], v *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := ValidateNotEmpty(m); err != nil {
		return nil, opErrorf(opMulVec, err)
	}
	if err := vector.ValidateNotNil(v); err != nil {
		return nil, opErrorf(opMulVec, err)
	}
	n := m.Size()
	if v.Size() != n {
		return nil, opErrorf(opMulVec, ErrDimensionMismatch)
	}
	y, err := vector.New[T](n)
	if err != nil {
		return nil, opErrorf(opMulVec, err)
	}
	for i := 0; i < n; i++ {
		dot, err := vector.Dot(m.Row(i), v)
		if err != nil {
			return nil, opErrorf(opMulVec, err)
		}
		*y.Elem(i) = dot
	}

	return y, nil
}

// Mul returns the matrix product a×b:
// out[i][j] = Σ_k a[i][k]*b[k][j], each sum seeded with T's zero value.
// Straight i→j→k loops, no blocking or tiling.
//
// Errors:
//   - ErrNilMatrix for nil operands; ErrDimensionMismatch when sizes differ.
//
// Complexity: Time O(n³), Space O(n²).
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	n := a.Size()
	out, err := New[T](n)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}
	var (
		i, j, k int
		ai, oi  *vector.Vector[T]
	)
	for i = 0; i < n; i++ {
		ai, oi = a.Row(i), out.Row(i)
		for j = 0; j < n; j++ {
			var sum T // zero seed
			for k = 0; k < n; k++ {
				sum += *ai.Elem(k) * *b.Row(k).Elem(j)
			}
			*oi.Elem(j) = sum
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
// Complexity: O(n²).
func Transpose[T any](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotEmpty(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	n := m.Size()
	out, err := New[T](n)
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	for i := 0; i < n; i++ {
		row := m.Row(i)
		for j := 0; j < n; j++ {
			*out.Row(j).Elem(i) = *row.Elem(j)
		}
	}

	return out, nil
}
