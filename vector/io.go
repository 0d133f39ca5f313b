// SPDX-License-Identifier: MIT

// Package vector - whitespace-delimited text I/O.
//
// Format:
//   - Size() tokens in order, no length prefix, no terminator.
//   - Input accepts any whitespace between tokens; output uses one separator
//     between elements and nothing after the last one.
//   - The reader must already know the size: ReadText fills a pre-sized vector.
package vector

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TextReader is an io.Reader that can also unread runes. fmt.Fscan stops
// exactly at token boundaries on such readers.
type TextReader interface {
	io.Reader
	io.RuneScanner
}

// NewTextReader returns r as a TextReader, wrapping it in a bufio.Reader if
// needed. The bufio.Reader reads ahead, so once a stream is wrapped every
// later read from it must go through the returned reader.
func NewTextReader(r io.Reader) TextReader {
	if tr, ok := r.(TextReader); ok {
		return tr
	}

	return bufio.NewReader(r)
}

// ReadText reads Size() whitespace-separated values into v.
// Values are staged in a scratch buffer and committed only after every token
// parsed, so on error v keeps its previous contents.
//
// r is consumed exactly as far as the tokens it yields. A reader that is not
// an io.RuneScanner is read one byte at a time and loses at most the single
// whitespace byte after the last token, so consecutive ReadText calls on
// os.Stdin or an io.MultiReader see the remaining input.
//
// Errors:
//   - the fmt/io error of the first failing token, wrapped as
//     "Vector.ReadText(<index>): ...". A short stream yields io.EOF or
//     io.ErrUnexpectedEOF.
func (v *Vector[T]) ReadText(r io.Reader) error {
	if v.sz == 0 {
		return nil
	}
	tmp := make([]T, v.sz)
	for i := 0; i < v.sz; i++ {
		if _, err := fmt.Fscan(r, &tmp[i]); err != nil {
			return vectorErrorf(ctxReadText, i, err)
		}
	}
	v.mem = tmp

	return nil
}

// WriteText writes the elements in order, joined by the configured separator,
// each right-justified to the configured width.
func (v *Vector[T]) WriteText(w io.Writer, opts ...Option) error {
	_, err := v.writeText(w, NewOptions(opts...))

	return err
}

// writeText is the byte-counting core shared by WriteText, WriteTo and String.
func (v *Vector[T]) writeText(w io.Writer, o Options) (int64, error) {
	var total int64
	for i := 0; i < v.sz; i++ {
		if i > 0 {
			n, err := io.WriteString(w, o.separator)
			total += int64(n)
			if err != nil {
				return total, vectorErrorf(ctxWriteText, i, err)
			}
		}
		n, err := fmt.Fprintf(w, "%*v", o.width, v.mem[i])
		total += int64(n)
		if err != nil {
			return total, vectorErrorf(ctxWriteText, i, err)
		}
	}

	return total, nil
}

// WriteTo implements io.WriterTo with the default options.
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	return v.writeText(w, NewOptions())
}

// String implements fmt.Stringer, e.g. "1 2 3".
func (v *Vector[T]) String() string {
	var sb strings.Builder
	_, _ = v.writeText(&sb, NewOptions()) // strings.Builder never fails

	return sb.String()
}
