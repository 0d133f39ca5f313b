package matrix_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
	"github.com/stretchr/testify/require"
)

func TestWriteTextFixedWidth(t *testing.T) {
	m := MustRows(t, [][]int{{1, 22}, {-3, 444}})

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	require.Equal(t, "    1    22\n   -3   444\n", buf.String())
	require.Equal(t, buf.String(), m.String())
}

func TestWriteTextOverrideWidth(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2}, {3, 4}})

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf, vector.WithWidth(2)))
	require.Equal(t, " 1  2\n 3  4\n", buf.String())
}

func TestWriteToCountsBytes(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2}, {3, 4}})

	var buf bytes.Buffer
	n, err := m.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)
}

func TestReadTextIgnoresLineBoundaries(t *testing.T) {
	m := MustNew[int](t, 2)
	require.NoError(t, m.ReadText(strings.NewReader("1 2 3\n4")))
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.Rows())
}

func TestReadTextTwiceFromPlainReader(t *testing.T) {
	r := io.MultiReader(strings.NewReader("1 2\n3 4\n"), strings.NewReader("5 6 7 8"))
	a := MustNew[int](t, 2)
	b := MustNew[int](t, 2)

	require.NoError(t, a.ReadText(r))
	require.NoError(t, b.ReadText(r))
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, a.Rows())
	require.Equal(t, [][]int{{5, 6}, {7, 8}}, b.Rows())
}

func TestReadTextFailureLeavesMatrixIntact(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2}, {3, 4}})

	err := m.ReadText(strings.NewReader("9 9 9"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Matrix.ReadText(1,0)")
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.Rows())
}

func TestMatrixTextRoundTrip(t *testing.T) {
	src := MustNew[float64](t, 4)
	RandomFill(t, src, 99)
	require.NoError(t, src.Set(0, 0, 0.25))

	var buf bytes.Buffer
	require.NoError(t, src.WriteText(&buf))

	dst := MustNew[float64](t, 4)
	require.NoError(t, dst.ReadText(&buf))
	require.True(t, matrix.Equal(src, dst))
}
