// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every fallible operation in this package returns one of these sentinels,
// wrapped with the method name and coordinates at the detection site.
// Tests MUST match them via errors.Is. Only the unchecked accessor (Elem)
// may panic, and only through the Go runtime bounds check.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a requested size is <= 0 or exceeds
	// MaxVectorSize (or the caller's tighter bound, e.g. MaxMatrixSize).
	ErrInvalidSize = errors.New("vector: invalid size")

	// ErrOutOfRange indicates a checked access with an index outside [0, Size()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates incompatible sizes between operands.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNilVector indicates that a nil *Vector (receiver or argument) was used.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrNilSource is returned by FromSlice when the source slice is nil.
	ErrNilSource = errors.New("vector: nil source buffer")
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxRef       = "Ref"
	ctxSet       = "Set"
	ctxNew       = "New"
	ctxFromSlice = "FromSlice"
	ctxAssign    = "Assign"
	ctxReadText  = "ReadText"
	ctxWriteText = "WriteText"

	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opMulScalar = "MulScalar"
	opDot       = "Dot"
	opFromGonum = "FromVector"
)

// vectorErrorf wraps err with a uniform "Vector.<method>(<idx>)" context.
func vectorErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, idx, err)
}

// opErrorf wraps err with an operation tag, e.g. "Add: vector: dimension mismatch".
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
