// SPDX-License-Identifier: MIT

// Package vector: functional options for the text writer.
//
// Design goals:
//   - Deterministic output: no global state, options are per call.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
//   - Defaults are documented constants and are what a bare WriteText produces.
package vector

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWidth is the minimum field width per element; 0 keeps the natural width.
	DefaultWidth = 0

	// DefaultSeparator is written between consecutive elements.
	DefaultSeparator = " "
)

const (
	panicWidthInvalid     = "vector: WithWidth: width must be non-negative"
	panicSeparatorInvalid = "vector: WithSeparator: separator must be non-empty"
)

// Option mutates Options. Applying the same Option twice is harmless.
type Option func(*Options)

// Options holds the resolved text formatting policy.
type Options struct {
	width     int    // minimum field width, right-justified
	separator string // written between elements, never after the last one
}

// Width reports the configured field width.
func (o Options) Width() int { return o.width }

// Separator reports the configured element separator.
func (o Options) Separator() string { return o.separator }

// WithWidth right-justifies every element in a field of at least n runes.
// Panics if n < 0.
func WithWidth(n int) Option {
	if n < 0 {
		panic(panicWidthInvalid)
	}

	return func(o *Options) { o.width = n }
}

// WithSeparator replaces the single-space element separator.
// Panics if sep is empty, because the output could no longer be read back.
func WithSeparator(sep string) Option {
	if sep == "" {
		panic(panicSeparatorInvalid)
	}

	return func(o *Options) { o.separator = sep }
}

// NewOptions resolves opts over the defaults, in order; nil entries are skipped.
func NewOptions(opts ...Option) Options {
	o := Options{width: DefaultWidth, separator: DefaultSeparator}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
