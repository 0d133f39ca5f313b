// SPDX-License-Identifier: MIT

// Package vector - owned contiguous storage & safe accessors.
//
// Purpose:
//   - Own exactly one buffer per Vector; no two live vectors share storage.
//   - Offer two access modes: Elem (unchecked, for inner loops) and
//     At/Ref/Set (checked, return ErrOutOfRange instead of panicking).
//   - Give explicit value semantics: Clone copies, Move transfers, Assign
//     copies-and-swaps, MoveAssign swaps.
//
// Complexity quicksheet:
//   - New/FromSlice/Clone/Assign: O(n); Move/MoveAssign/Swap/At/Ref/Set/Elem: O(1).
package vector

// Vector is a fixed-size, heap-backed sequence of T.
//   - sz is the element count (0 only after the vector was moved from).
//   - mem is the exclusively owned buffer, len(mem) == sz.
type Vector[T any] struct {
	sz  int
	mem []T
}

// New allocates a vector of size zero-valued elements.
//
// Errors:
//   - ErrInvalidSize when size <= 0 or size > MaxVectorSize.
//
// Complexity: Time O(size), Space O(size).
func New[T any](size int) (*Vector[T], error) {
	if err := ValidateSize(size); err != nil {
		return nil, vectorErrorf(ctxNew, size, err)
	}

	return &Vector[T]{sz: size, mem: make([]T, size)}, nil
}

// FromSlice allocates a vector of length elements copied from src[:length].
// src itself is never retained.
//
// Errors:
//   - ErrNilSource when src is nil.
//   - ErrInvalidSize when length is out of (0, MaxVectorSize].
//   - ErrDimensionMismatch when len(src) < length.
func FromSlice[T any](src []T, length int) (*Vector[T], error) {
	if src == nil {
		return nil, vectorErrorf(ctxFromSlice, length, ErrNilSource)
	}
	if err := ValidateSize(length); err != nil {
		return nil, vectorErrorf(ctxFromSlice, length, err)
	}
	if len(src) < length {
		return nil, vectorErrorf(ctxFromSlice, length, ErrDimensionMismatch)
	}
	mem := make([]T, length)
	copy(mem, src)

	return &Vector[T]{sz: length, mem: mem}, nil
}

// Of is shorthand for FromSlice(vals, len(vals)).
func Of[T any](vals ...T) (*Vector[T], error) {
	if vals == nil {
		vals = []T{}
	}

	return FromSlice(vals, len(vals))
}

// Size returns the element count. A moved-from vector reports 0.
func (v *Vector[T]) Size() int { return v.sz }

// Empty reports whether v has been moved from (or is nil).
func (v *Vector[T]) Empty() bool { return v == nil || v.sz == 0 }

// Clone returns a deep copy with a freshly allocated buffer.
// Elements are copied by value; if T is a pointer type, the pointees are shared.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	if v.sz == 0 {
		return &Vector[T]{}
	}
	mem := make([]T, v.sz)
	copy(mem, v.mem)

	return &Vector[T]{sz: v.sz, mem: mem}
}

// Move transfers ownership of v's buffer to a new Vector and leaves v empty
// (Size()==0, no buffer). It never fails and never allocates a buffer.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{}
	Swap(out, v)

	return out
}

// Assign replaces v's contents with a deep copy of src.
// The copy is fully built before anything in v changes, so on error v is
// untouched. Assigning a vector to itself is a no-op.
//
// Errors:
//   - ErrNilVector when src is nil.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if src == nil {
		return vectorErrorf(ctxAssign, 0, ErrNilVector)
	}
	if v == src {
		return nil
	}
	tmp := src.Clone()
	Swap(v, tmp)

	return nil
}

// MoveAssign exchanges state with src: v takes src's buffer and src receives
// v's previous one. No allocation; self-move is a no-op.
func (v *Vector[T]) MoveAssign(src *Vector[T]) {
	if src == nil || v == src {
		return
	}
	Swap(v, src)
}

// Swap exchanges the size and buffer ownership of a and b in O(1).
func Swap[T any](a, b *Vector[T]) {
	a.sz, b.sz = b.sz, a.sz
	a.mem, b.mem = b.mem, a.mem
}

// Elem returns a pointer to element i WITHOUT a range check by this package.
// The caller guarantees 0 <= i < Size(); otherwise the Go runtime panics.
// Intended for hot loops that already know their bounds.
func (v *Vector[T]) Elem(i int) *T {
	return &v.mem[i]
}

// indexOf validates i against the current size.
func (v *Vector[T]) indexOf(i int) error {
	if i < 0 || i >= v.sz {
		return ErrOutOfRange
	}

	return nil
}

// At returns element i, or ErrOutOfRange when i < 0 or i >= Size().
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.indexOf(i); err != nil {
		var zero T
		return zero, vectorErrorf(ctxAt, i, err)
	}

	return v.mem[i], nil
}

// Ref returns a mutable reference to element i, or ErrOutOfRange.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if err := v.indexOf(i); err != nil {
		return nil, vectorErrorf(ctxRef, i, err)
	}

	return &v.mem[i], nil
}

// Set stores x at index i, or returns ErrOutOfRange.
func (v *Vector[T]) Set(i int, x T) error {
	if err := v.indexOf(i); err != nil {
		return vectorErrorf(ctxSet, i, err)
	}
	v.mem[i] = x

	return nil
}

// Slice returns a copy of the elements; mutating it does not affect v.
func (v *Vector[T]) Slice() []T {
	out := make([]T, v.sz)
	copy(out, v.mem)

	return out
}
