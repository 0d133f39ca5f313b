// Package matrix provides Matrix[T], a square N×N container stored as a
// vector of row vectors.
//
// The matrix package provides:
//
//   - Matrix[T] built on vector.Vector: N owned rows, each owning N elements.
//     Copy (Clone, Assign) and move (Move, MoveAssign) follow the row
//     vectors' semantics transitively.
//   - Two access modes: Row(i) without checks, and RowAt/At/Ref/Set with
//     ErrOutOfRange on any negative or too-large index.
//   - Arithmetic as generic functions: Add, Sub, Mul (O(n³) textbook
//     product), MulScalar, MulVec (row dot products), Transpose.
//   - Text I/O: ReadText fills a pre-sized matrix; WriteText prints one row
//     per line with elements right-justified to width 5.
//   - gonum interop for float64 matrices (ToDense, FromDense).
//
// Errors are the vector package's sentinels re-exported here, plus
// ErrNilMatrix; match them with errors.Is.
//
// Limits: dimensions are in [1, MaxMatrixSize]. Matrices are never shared
// between goroutines internally; serialize access to a single instance.
package matrix
