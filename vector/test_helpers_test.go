// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures that abort the test on setup failure.

package vector_test

import (
	"testing"

	"github.com/katalvlaran/dynmat/vector"
)

// MustNew allocates a zeroed vector of the given size or fails the test.
func MustNew[T any](tb testing.TB, size int) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.New[T](size)
	if err != nil {
		tb.Fatalf("New(%d): %v", size, err)
	}

	return v
}

// MustOf builds a vector holding vals or fails the test.
func MustOf[T any](tb testing.TB, vals ...T) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.Of(vals...)
	if err != nil {
		tb.Fatalf("Of(%v): %v", vals, err)
	}

	return v
}

// MustAt reads element i or fails the test.
func MustAt[T any](tb testing.TB, v *vector.Vector[T], i int) T {
	tb.Helper()
	x, err := v.At(i)
	if err != nil {
		tb.Fatalf("At(%d): %v", i, err)
	}

	return x
}

// failingWriter fails every write after the first ok bytes.
type failingWriter struct {
	ok  int
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.ok <= 0 {
		return 0, w.err
	}
	if len(p) > w.ok {
		n := w.ok
		w.ok = 0
		return n, w.err
	}
	w.ok -= len(p)

	return len(p), nil
}
