// SPDX-License-Identifier: MIT

// Package matrix - square container stored as a vector of row vectors.
//
// Purpose:
//   - Represent an N×N matrix as vector.Vector[*vector.Vector[T]]: N owned
//     rows, each owning N elements. The outer vector owns the row handles;
//     every row owns its own buffer.
//   - Mirror vector's value semantics transitively: Clone deep-copies every
//     row, Move hands over the outer vector (and thereby every row).
//
// Complexity quicksheet:
//   - New/Clone/Assign: O(n²); Move/MoveAssign/Swap/At/Ref/Set/Row: O(1).
package matrix

import "github.com/katalvlaran/dynmat/vector"

// Matrix is an N×N container of T.
// The zero value is an empty matrix: rows is nil and Size() reports 0.
// After Move rows is an empty vector, which reads the same way.
type Matrix[T any] struct {
	rows *vector.Vector[*vector.Vector[T]]
}

// New allocates a size×size matrix of zero values.
//
// Errors:
//   - ErrInvalidSize when size > MaxMatrixSize, or (from the outer row
//     vector) when size <= 0.
//
// Complexity: Time O(size²), Space O(size²).
func New[T any](size int) (*Matrix[T], error) {
	if size > MaxMatrixSize {
		return nil, matrixErrorf(ctxNew, size, size, ErrInvalidSize)
	}
	rows, err := vector.New[*vector.Vector[T]](size)
	if err != nil {
		return nil, matrixErrorf(ctxNew, size, size, err)
	}
	for i := 0; i < size; i++ {
		row, err := vector.New[T](size)
		if err != nil {
			return nil, matrixErrorf(ctxNew, size, size, err)
		}
		*rows.Elem(i) = row
	}

	return &Matrix[T]{rows: rows}, nil
}

// Size returns the dimension N. A nil, zero-value or moved-from matrix
// reports 0.
func (m *Matrix[T]) Size() int {
	if m == nil || m.rows == nil {
		return 0
	}

	return m.rows.Size()
}

// Empty reports whether m is nil or has been moved from.
func (m *Matrix[T]) Empty() bool { return m == nil || m.rows.Empty() }

// Clone returns a deep copy: a new outer vector and a new buffer per row.
// Complexity: O(n²).
func (m *Matrix[T]) Clone() *Matrix[T] {
	n := m.Size()
	if n == 0 {
		return &Matrix[T]{rows: &vector.Vector[*vector.Vector[T]]{}}
	}
	rows := m.rows.Clone() // copies row handles only
	for i := 0; i < n; i++ {
		*rows.Elem(i) = (*rows.Elem(i)).Clone()
	}

	return &Matrix[T]{rows: rows}
}

// Move transfers every row to a new Matrix and leaves m empty. Never fails.
func (m *Matrix[T]) Move() *Matrix[T] {
	if m.rows == nil {
		return &Matrix[T]{}
	}

	return &Matrix[T]{rows: m.rows.Move()}
}

// Assign replaces m with a deep copy of src (copy-and-swap).
// Self-assignment is a no-op; on error m is untouched.
//
// Errors:
//   - ErrNilMatrix when src is nil.
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if src == nil {
		return matrixErrorf(ctxAssign, 0, 0, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	tmp := src.Clone()
	Swap(m, tmp)

	return nil
}

// MoveAssign exchanges state with src; self-move is a no-op.
func (m *Matrix[T]) MoveAssign(src *Matrix[T]) {
	if src == nil || m == src {
		return
	}
	Swap(m, src)
}

// Swap exchanges the row storage of a and b in O(1).
func Swap[T any](a, b *Matrix[T]) {
	a.rows, b.rows = b.rows, a.rows
}
