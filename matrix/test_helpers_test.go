// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Small deterministic fixtures that abort the test on setup failure.
//   • Keep values exactly representable so equality checks stay exact.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

// MustNew allocates an n×n zero matrix or fails the test.
func MustNew[T any](tb testing.TB, n int) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New[T](n)
	if err != nil {
		tb.Fatalf("New(%d): %v", n, err)
	}

	return m
}

// MustRows builds a matrix from literal rows or fails the test.
func MustRows[T any](tb testing.TB, rows [][]T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		tb.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// MustVec builds a vector from literal values or fails the test.
func MustVec[T any](tb testing.TB, vals ...T) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.Of(vals...)
	if err != nil {
		tb.Fatalf("vector.Of(%v): %v", vals, err)
	}

	return v
}

// MustAt reads (i, j) or fails the test.
func MustAt[T any](tb testing.TB, m *matrix.Matrix[T], i, j int) T {
	tb.Helper()
	x, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return x
}

// RandomFill writes small integers (exact in float64) from a fixed seed.
func RandomFill(tb testing.TB, m *matrix.Matrix[float64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	n := m.Size()
	for i := 0; i < n; i++ {
		row := m.Row(i)
		for j := 0; j < n; j++ {
			*row.Elem(j) = float64(rng.Intn(19) - 9)
		}
	}
}
