// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Equality and arithmetic over Vector values.
//   - Every operation allocates a fresh result; operands are never mutated.
//
// Determinism & Performance:
//   - Fixed 0..n-1 loop order over the flat buffers; O(n) time and space.
//   - Validation happens before allocation, so a failing call allocates nothing.

package vector

// Equal reports whether a and b have the same size and pairwise equal elements.
// Two nil vectors are equal; a nil and a non-nil vector are not.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.sz != b.sz {
		return false
	}
	for i := 0; i < a.sz; i++ {
		if a.mem[i] != b.mem[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool { return !Equal(a, b) }

// scalarOp builds out[i] = f(v[i], s) into a fresh vector of v's size.
func scalarOp[T Number](v *Vector[T], s T, opTag string, f func(x, y T) T) (*Vector[T], error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, opErrorf(opTag, err)
	}
	out, err := New[T](v.sz)
	if err != nil {
		return nil, opErrorf(opTag, err)
	}
	for i := 0; i < v.sz; i++ {
		out.mem[i] = f(v.mem[i], s)
	}

	return out, nil
}

// pairOp builds out[i] = f(a[i], b[i]); sizes must match.
func pairOp[T Number](a, b *Vector[T], opTag string, f func(x, y T) T) (*Vector[T], error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, opErrorf(opTag, err)
	}
	out, err := New[T](a.sz)
	if err != nil {
		return nil, opErrorf(opTag, err)
	}
	for i := 0; i < a.sz; i++ {
		out.mem[i] = f(a.mem[i], b.mem[i])
	}

	return out, nil
}

// AddScalar returns v + s element-wise.
func AddScalar[T Number](v *Vector[T], s T) (*Vector[T], error) {
	return scalarOp(v, s, opAddScalar, func(x, y T) T { return x + y })
}

// SubScalar returns v - s element-wise.
func SubScalar[T Number](v *Vector[T], s T) (*Vector[T], error) {
	return scalarOp(v, s, opSubScalar, func(x, y T) T { return x - y })
}

// MulScalar returns v * s element-wise.
func MulScalar[T Number](v *Vector[T], s T) (*Vector[T], error) {
	return scalarOp(v, s, opMulScalar, func(x, y T) T { return x * y })
}

// Add returns a + b element-wise, or ErrDimensionMismatch.
func Add[T Number](a, b *Vector[T]) (*Vector[T], error) {
	return pairOp(a, b, opAdd, func(x, y T) T { return x + y })
}

// Sub returns a - b element-wise, or ErrDimensionMismatch.
func Sub[T Number](a, b *Vector[T]) (*Vector[T], error) {
	return pairOp(a, b, opSub, func(x, y T) T { return x - y })
}

// Mul returns the Hadamard product a ⊙ b (NOT the dot product).
func Mul[T Number](a, b *Vector[T]) (*Vector[T], error) {
	return pairOp(a, b, opMul, func(x, y T) T { return x * y })
}

// Sum returns the sum of all elements, seeded with T's zero value.
// An empty or nil vector sums to zero.
func Sum[T Number](v *Vector[T]) T {
	var acc T
	if v == nil {
		return acc
	}
	for i := 0; i < v.sz; i++ {
		acc += v.mem[i]
	}

	return acc
}

// Dot returns Σ a[i]*b[i], computed as Sum(Mul(a, b)).
func Dot[T Number](a, b *Vector[T]) (T, error) {
	prod, err := Mul(a, b)
	if err != nil {
		var zero T
		return zero, opErrorf(opDot, err)
	}

	return Sum(prod), nil
}
