// SPDX-License-Identifier: MIT

package vector

import "gonum.org/v1/gonum/mat"

// ToVecDense copies v into a new gonum column vector.
// A moved-from vector has no gonum counterpart (gonum rejects zero length),
// so ErrInvalidSize is returned for it.
func ToVecDense(v *Vector[float64]) (*mat.VecDense, error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, opErrorf("ToVecDense", err)
	}
	if v.sz == 0 {
		return nil, opErrorf("ToVecDense", ErrInvalidSize)
	}

	return mat.NewVecDense(v.sz, v.Slice()), nil
}

// FromVector copies any gonum vector into a new Vector[float64].
func FromVector(src mat.Vector) (*Vector[float64], error) {
	if src == nil {
		return nil, opErrorf(opFromGonum, ErrNilSource)
	}
	out, err := New[float64](src.Len())
	if err != nil {
		return nil, opErrorf(opFromGonum, err)
	}
	for i := 0; i < out.sz; i++ {
		out.mem[i] = src.AtVec(i)
	}

	return out, nil
}
