// SPDX-License-Identifier: MIT

// Package matrix - row and element accessors.
//
// Two contracts, deliberately kept apart:
//   - Row(i): unchecked; the caller guarantees 0 <= i < Size(). Misuse
//     panics in the Go runtime.
//   - RowAt/At/Ref/Set: checked; negative or too-large indices return
//     ErrOutOfRange and never panic.
package matrix

import "github.com/katalvlaran/dynmat/vector"

// Row returns row i without a range check. The returned vector is the
// matrix's own storage: writes through it are visible in m. Do not
// Assign or MoveAssign a vector of another size into it.
func (m *Matrix[T]) Row(i int) *vector.Vector[T] {
	return *m.rows.Elem(i)
}

// RowAt returns a copy of row i, or ErrOutOfRange. The copy is detached
// from m, so resizing or moving it cannot break the N×N shape; use Row or
// Set to write into the matrix.
func (m *Matrix[T]) RowAt(i int) (*vector.Vector[T], error) {
	if i < 0 || i >= m.Size() {
		return nil, matrixErrorf(ctxRowAt, i, 0, ErrOutOfRange)
	}

	return m.Row(i).Clone(), nil
}

// indexOf validates (i, j). Both indices are signed, so negatives are
// rejected explicitly rather than wrapping around.
func (m *Matrix[T]) indexOf(i, j int) error {
	n := m.Size()
	if i < 0 || i >= n {
		return ErrOutOfRange
	}
	if j < 0 || j >= n {
		return ErrOutOfRange
	}

	return nil
}

// At returns the element at (i, j), or ErrOutOfRange.
func (m *Matrix[T]) At(i, j int) (T, error) {
	if err := m.indexOf(i, j); err != nil {
		var zero T
		return zero, matrixErrorf(ctxAt, i, j, err)
	}

	return *m.Row(i).Elem(j), nil
}

// Ref returns a mutable reference to the element at (i, j), or ErrOutOfRange.
func (m *Matrix[T]) Ref(i, j int) (*T, error) {
	if err := m.indexOf(i, j); err != nil {
		return nil, matrixErrorf(ctxRef, i, j, err)
	}

	return m.Row(i).Elem(j), nil
}

// Set stores x at (i, j), or returns ErrOutOfRange.
func (m *Matrix[T]) Set(i, j int, x T) error {
	if err := m.indexOf(i, j); err != nil {
		return matrixErrorf(ctxSet, i, j, err)
	}
	*m.Row(i).Elem(j) = x

	return nil
}

// Rows returns a copy of the elements as a [][]T, row by row.
func (m *Matrix[T]) Rows() [][]T {
	n := m.Size()
	out := make([][]T, n)
	for i := 0; i < n; i++ {
		out[i] = m.Row(i).Slice()
	}

	return out
}
