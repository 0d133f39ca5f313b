// SPDX-License-Identifier: MIT

// Package matrix - text I/O.
//
// Format:
//   - Output: Size() lines; each line is the row's vector text with every
//     element right-justified to DefaultFieldWidth, terminated by '\n'.
//   - Input: Size() rows, each read with the row's own ReadText. Line
//     boundaries are not enforced; any whitespace separates tokens.
package matrix

import (
	"io"
	"strings"

	"github.com/katalvlaran/dynmat/vector"
)

// ReadText reads Size() rows of Size() values from r.
// Rows are staged in a fresh matrix and swapped in only when every value
// parsed, so on error m keeps its previous contents.
func (m *Matrix[T]) ReadText(r io.Reader) error {
	n := m.Size()
	if n == 0 {
		return nil
	}
	tmp, err := New[T](n)
	if err != nil {
		return matrixErrorf(ctxReadText, 0, 0, err)
	}
	for i := 0; i < n; i++ {
		if err = tmp.Row(i).ReadText(r); err != nil {
			return matrixErrorf(ctxReadText, i, 0, err)
		}
	}
	Swap(m, tmp)

	return nil
}

// WriteText writes one line per row. opts are vector.Option values applied
// after the default vector.WithWidth(DefaultFieldWidth).
func (m *Matrix[T]) WriteText(w io.Writer, opts ...vector.Option) error {
	_, err := m.writeText(w, opts)

	return err
}

func (m *Matrix[T]) writeText(w io.Writer, opts []vector.Option) (int64, error) {
	cw := &countingWriter{w: w}
	all := append([]vector.Option{vector.WithWidth(DefaultFieldWidth)}, opts...)
	n := m.Size()
	for i := 0; i < n; i++ {
		if err := m.Row(i).WriteText(cw, all...); err != nil {
			return cw.n, matrixErrorf(ctxWrite, i, 0, err)
		}
		if _, err := io.WriteString(cw, "\n"); err != nil {
			return cw.n, matrixErrorf(ctxWrite, i, n, err)
		}
	}

	return cw.n, nil
}

// WriteTo implements io.WriterTo with the default layout.
func (m *Matrix[T]) WriteTo(w io.Writer) (int64, error) {
	return m.writeText(w, nil)
}

// String implements fmt.Stringer.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	_, _ = m.writeText(&sb, nil)

	return sb.String()
}

// countingWriter tallies bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
