// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
)

const (
	_fmtRowOpen    = "["
	_fmtRowClose   = "]"
	_fmtTupleOpen  = "("
	_fmtTupleClose = ")"
	_fmtTupleSep   = " "
)

// Format renders g as text:
//
//	empty grid                 → ""
//	flat grid, one element     → the bare element, no brackets
//	flat grid otherwise        → [a, b, c]
//	multi grid                 → one [..] per row, joined by the row delimiter
//
// Format never mutates g.
func Format[T any](g Grid[T], opts ...Option) string {
	o := gatherOptions(opts...)
	switch g.Shape() {
	case ShapeEmpty:
		return ""
	case ShapeFlat:
		return formatRow(g[0], o)
	}

	var b strings.Builder
	for i, r := range g {
		if i > 0 {
			b.WriteString(o.RowDelimiter)
		}
		writeBracketed(&b, r, o)
	}

	return b.String()
}

// FormatRow renders a single row: the bare element when r has exactly one
// element, otherwise a bracketed list.
func FormatRow[T any](r Row[T], opts ...Option) string {
	return formatRow(r, gatherOptions(opts...))
}

// FormatTuples renders a zip result in tuple notation, for example
// [(1 -1) , (2 3)] for pairs or [(1 -1 1 -1) , (2 3 2 3)] for quads.
func FormatTuples[T any](z ZipResult[T], opts ...Option) string {
	o := gatherOptions(opts...)
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for i, r := range zipRows(z) {
		if i > 0 {
			b.WriteString(o.TupleSeparator)
		}
		b.WriteString(_fmtTupleOpen)
		for j, v := range r {
			if j > 0 {
				b.WriteString(_fmtTupleSep)
			}
			b.WriteString(fmt.Sprintf(o.Verb, v))
		}
		b.WriteString(_fmtTupleClose)
	}
	b.WriteString(_fmtRowClose)

	return b.String()
}

// Interleave flattens a zip result into a single row, tuples laid end to
// end: a PairGrid gives [a0, b0, a1, b1, ...]. It is a view for display;
// the PairGrid / QuadGrid rows stay the canonical data.
func Interleave[T any](z ZipResult[T]) Row[T] {
	if z == nil {
		return Row[T]{}
	}
	rows := zipRows(z)
	out := make(Row[T], 0, len(rows)*z.Kind().Arity())
	for _, r := range rows {
		out = append(out, r...)
	}

	return out
}

// zipRows reads the variant's rows without copying.
func zipRows[T any](z ZipResult[T]) Grid[T] {
	switch v := z.(type) {
	case PairGrid[T]:
		return v.rows
	case QuadGrid[T]:
		return v.rows
	default:
		return nil
	}
}

func formatRow[T any](r Row[T], o Options) string {
	if len(r) == 1 {
		return fmt.Sprintf(o.Verb, r[0])
	}
	var b strings.Builder
	writeBracketed(&b, r, o)

	return b.String()
}

func writeBracketed[T any](b *strings.Builder, r Row[T], o Options) {
	b.WriteString(_fmtRowOpen)
	for j, v := range r {
		if j > 0 {
			b.WriteString(o.Separator)
		}
		b.WriteString(fmt.Sprintf(o.Verb, v))
	}
	b.WriteString(_fmtRowClose)
}
