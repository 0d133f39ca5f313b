// SPDX-License-Identifier: MIT

// Package vector: limits and element constraints.
package vector

import "golang.org/x/exp/constraints"

// MaxVectorSize is the largest element count any Vector may hold.
// Every constructor consults it; it is not adjustable at run time.
const MaxVectorSize = 100_000_000

// Number is the capability set required by arithmetic: zero value, copy,
// equality, +, -, * and fmt scanning/printing. All built-in numeric kinds
// satisfy it.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}
