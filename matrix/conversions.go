// SPDX-License-Identifier: MIT
// Package matrix - gonum interop.
//
// Purpose:
//   - Hand a float64 Matrix to gonum's mat package (factorizations,
//     formatting, BLAS-backed products) and bring results back.
//   - Both directions copy; no storage is ever shared with gonum.

package matrix

import "gonum.org/v1/gonum/mat"

// ToDense copies m into a new gonum *mat.Dense of the same dimension.
func ToDense(m *Matrix[float64]) (*mat.Dense, error) {
	if err := ValidateNotEmpty(m); err != nil {
		return nil, opErrorf(opToDense, err)
	}
	n := m.Size()
	data := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		data = append(data, m.Row(i).Slice()...)
	}

	return mat.NewDense(n, n, data), nil
}

// FromDense copies any square gonum matrix into a new Matrix[float64].
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrDimensionMismatch when src is not square.
//   - ErrInvalidSize when the dimension exceeds MaxMatrixSize.
func FromDense(src mat.Matrix) (*Matrix[float64], error) {
	if src == nil {
		return nil, opErrorf(opFromDense, ErrNilMatrix)
	}
	r, c := src.Dims()
	if r != c {
		return nil, opErrorf(opFromDense, ErrDimensionMismatch)
	}
	out, err := New[float64](r)
	if err != nil {
		return nil, opErrorf(opFromDense, err)
	}
	for i := 0; i < r; i++ {
		row := out.Row(i)
		for j := 0; j < c; j++ {
			*row.Elem(j) = src.At(i, j)
		}
	}

	return out, nil
}
