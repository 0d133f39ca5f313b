// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// A Matrix is built from vector.Vector rows, so the size/index/dimension
// taxonomy is shared with package vector: the sentinels below are the SAME
// values, and errors.Is(err, matrix.ErrOutOfRange) and
// errors.Is(err, vector.ErrOutOfRange) agree for any error from either package.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> invalid size -> index -> dimension mismatch.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

var (
	// ErrInvalidSize is returned when a requested dimension is <= 0 or
	// exceeds MaxMatrixSize.
	ErrInvalidSize = vector.ErrInvalidSize

	// ErrOutOfRange indicates a checked access with a row or column index
	// outside [0, Size()).
	ErrOutOfRange = vector.ErrOutOfRange

	// ErrDimensionMismatch indicates operands whose dimensions are incompatible,
	// or input rows that do not form a square.
	ErrDimensionMismatch = vector.ErrDimensionMismatch

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxAt       = "At"
	ctxRef      = "Ref"
	ctxSet      = "Set"
	ctxRowAt    = "RowAt"
	ctxAssign   = "Assign"
	ctxReadText = "ReadText"
	ctxWrite    = "WriteText"

	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMulVec    = "MulVec"
	opMulScalar = "MulScalar"
	opTranspose = "Transpose"
	opIdentity  = "NewIdentity"
	opFromRows  = "NewFromRows"
	opToDense   = "ToDense"
	opFromDense = "FromDense"
)

// matrixErrorf wraps err with a "Matrix.<method>(i,j)" context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// opErrorf wraps err with an operation tag, e.g. "Mul: vector: dimension mismatch".
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
