// SPDX-License-Identifier: MIT

package grid

// Row is an ordered, finite sequence of values of one element type.
// Functions in this package never modify a Row they receive.
type Row[T any] []T

// Grid is an ordered sequence of Rows sharing one element type.
// Rows need not have equal length; every operation preserves per-row
// length uniformity when the input has it.
type Grid[T any] []Row[T]

// Shape classifies a Grid by its row count. It is derived on demand and
// never stored, so a Grid carries no mode flag.
type Shape int

const (
	// ShapeEmpty is a grid with no rows.
	ShapeEmpty Shape = iota
	// ShapeFlat is a grid with exactly one row.
	ShapeFlat
	// ShapeMulti is a grid with more than one row.
	ShapeMulti
)

// String returns the lower-case name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeEmpty:
		return "empty"
	case ShapeFlat:
		return "flat"
	case ShapeMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// Len returns the number of rows.
func (g Grid[T]) Len() int { return len(g) }

// Shape classifies g by row count.
func (g Grid[T]) Shape() Shape {
	switch len(g) {
	case 0:
		return ShapeEmpty
	case 1:
		return ShapeFlat
	default:
		return ShapeMulti
	}
}

// IsFlat reports whether g has exactly one row.
func (g Grid[T]) IsFlat() bool { return len(g) == 1 }

// IsMulti reports whether g has more than one row.
func (g Grid[T]) IsMulti() bool { return len(g) > 1 }

// Clone returns a deep copy of g. A nil grid clones to an empty, non-nil grid.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for i, r := range g {
		out[i] = r.Clone()
	}

	return out
}

// Append returns a new grid holding g's rows followed by a copy of r.
// g itself is left untouched.
func (g Grid[T]) Append(r Row[T]) Grid[T] {
	out := make(Grid[T], 0, len(g)+1)
	out = append(out, g.Clone()...)

	return append(out, r.Clone())
}

// String renders g with the default presentation options.
func (g Grid[T]) String() string { return Format(g) }

// Clone returns a copy of r. A nil row clones to an empty, non-nil row.
func (r Row[T]) Clone() Row[T] {
	out := make(Row[T], len(r))
	copy(out, r)

	return out
}

// Equal reports whether a and b have the same rows, element by element.
// A nil grid equals an empty grid, and a nil row equals an empty row.
func Equal[T comparable](a, b Grid[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}
