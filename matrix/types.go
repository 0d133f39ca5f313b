// SPDX-License-Identifier: MIT

// Package matrix: limits and formatting defaults.
package matrix

import "github.com/katalvlaran/dynmat/vector"

// MaxMatrixSize is the largest dimension N of an N×N Matrix. It is tighter
// than vector.MaxVectorSize, so in practice it governs every constructor.
const MaxMatrixSize = 10_000

// DefaultFieldWidth is the right-justified width of every element in
// WriteText output.
const DefaultFieldWidth = 5

// Number re-exports the element constraint required by arithmetic.
type Number = vector.Number
