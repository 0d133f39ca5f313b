// Package dynmat is a small toolkit of generic, heap-backed numeric
// containers with explicit value semantics.
//
// Under the hood, everything is organized under two subpackages:
//
//	vector/  Vector[T]: fixed-size owned buffer, checked/unchecked access,
//	         copy/move/swap, scalar and element-wise arithmetic, text I/O
//	matrix/  Matrix[T]: N×N container stored as a vector of row vectors,
//	         row/element access, matrix-vector and matrix-matrix products,
//	         text I/O, gonum interop
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.NewFromRows([][]int{{5, 6}, {7, 8}})
//	p, _ := matrix.Mul(a, b) // [[19 22] [43 50]]
//
// A runnable power-iteration demo lives in examples/power_iteration.
//
//	go get github.com/katalvlaran/dynmat
package dynmat
