// SPDX-License-Identifier: MIT

package grid

// Presentation defaults (single source of truth for zero-option calls).
const (
	// DefaultSeparator sits between elements of a bracketed row.
	DefaultSeparator = ", "

	// DefaultRowDelimiter sits between rows of a multi grid.
	DefaultRowDelimiter = "\n"

	// DefaultVerb is the fmt verb used to render a single element.
	DefaultVerb = "%v"

	// DefaultTupleSeparator sits between tuples in FormatTuples.
	DefaultTupleSeparator = " , "
)

const panicVerbEmpty = "grid: WithVerb: verb must be non-empty"

// Options holds presentation settings. Build it through Option values;
// the zero value is not meaningful on its own.
type Options struct {
	Separator      string
	RowDelimiter   string
	Verb           string
	TupleSeparator string
}

// Option mutates Options. Applying the same Option twice is harmless;
// the last writer wins.
type Option func(*Options)

// DefaultOptions returns Options populated with the Default* constants.
func DefaultOptions() Options {
	return Options{
		Separator:      DefaultSeparator,
		RowDelimiter:   DefaultRowDelimiter,
		Verb:           DefaultVerb,
		TupleSeparator: DefaultTupleSeparator,
	}
}

// WithSeparator sets the text placed between elements of a row.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.Separator = sep }
}

// WithRowDelimiter sets the text placed between rows of a multi grid.
func WithRowDelimiter(delim string) Option {
	return func(o *Options) { o.RowDelimiter = delim }
}

// WithVerb sets the fmt verb for elements, e.g. "%q" or "%c".
// It panics on an empty verb (programmer error).
func WithVerb(verb string) Option {
	if verb == "" {
		panic(panicVerbEmpty)
	}

	return func(o *Options) { o.Verb = verb }
}

// WithTupleSeparator sets the text placed between tuples in FormatTuples.
func WithTupleSeparator(sep string) Option {
	return func(o *Options) { o.TupleSeparator = sep }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
