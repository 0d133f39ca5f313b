// Package vector provides Vector[T], a fixed-size, heap-backed container with
// explicit value semantics.
//
// What & Why:
//
//	A Vector owns exactly one contiguous buffer. Duplication is always explicit
//	(Clone, Assign) and ownership transfer is always explicit (Move,
//	MoveAssign), so two live vectors never alias the same storage by accident.
//	Every fallible operation builds its result before touching the receiver:
//	a failed Assign or ReadText leaves the destination exactly as it was.
//
// Access modes:
//
//	Elem(i)           unchecked pointer; the caller guarantees 0 <= i < Size().
//	At / Ref / Set    checked; return ErrOutOfRange instead of panicking.
//
// Arithmetic lives in package-level generic functions (Add, Sub, Mul,
// AddScalar, SubScalar, MulScalar, Dot, Sum) constrained by Number, and
// equality in Equal/NotEqual constrained by comparable. Mul is the
// element-wise (Hadamard) product; Dot is the scalar product.
//
// Text format:
//
//	Size() tokens separated by whitespace on input and by a single space on
//	output; no length prefix, no terminator.
//
// Limits: sizes are in [1, MaxVectorSize]. Only a moved-from vector has size 0.
//
// Concurrency: a Vector has no internal locking; serialize access to a single
// instance yourself.
package vector
