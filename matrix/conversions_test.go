package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDenseRoundTrip(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	d, err := matrix.ToDense(m)
	require.NoError(t, err)
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, 3.0, d.At(1, 0))

	back, err := matrix.FromDense(d)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, back))
}

func TestFromDenseErrors(t *testing.T) {
	_, err := matrix.FromDense(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.ToDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulMatchesGonum uses gonum's BLAS-backed product as an oracle.
func TestMulMatchesGonum(t *testing.T) {
	for _, n := range []int{1, 2, 5, 12} {
		a := MustNew[float64](t, n)
		b := MustNew[float64](t, n)
		RandomFill(t, a, int64(n))
		RandomFill(t, b, int64(n)+100)

		got, err := matrix.Mul(a, b)
		require.NoError(t, err)

		da, err := matrix.ToDense(a)
		require.NoError(t, err)
		db, err := matrix.ToDense(b)
		require.NoError(t, err)
		var want mat.Dense
		want.Mul(da, db)

		gd, err := matrix.ToDense(got)
		require.NoError(t, err)
		require.True(t, mat.Equal(gd, &want), "n=%d", n)
	}
}

func TestMulVecMatchesGonum(t *testing.T) {
	m := MustNew[float64](t, 7)
	RandomFill(t, m, 3)
	v := MustVec(t, 1.0, -2.0, 3.0, 0.0, 5.0, -6.0, 7.0)

	got, err := matrix.MulVec(m, v)
	require.NoError(t, err)

	dm, err := matrix.ToDense(m)
	require.NoError(t, err)
	dv, err := vector.ToVecDense(v)
	require.NoError(t, err)
	var want mat.VecDense
	want.MulVec(dm, dv)

	gv, err := vector.ToVecDense(got)
	require.NoError(t, err)
	require.True(t, mat.Equal(gv, &want))
}
