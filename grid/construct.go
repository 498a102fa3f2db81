// SPDX-License-Identifier: MIT

package grid

// Generate builds a flat grid whose single row has count elements,
// element i being f(i). count == 0 yields one empty row; a negative count
// is treated as 0.
//
// f must be total over [0, count); it is called exactly once per index, in
// ascending order.
// Complexity: O(count) time and memory.
func Generate[T any](count int, f func(int) T) Grid[T] {
	if count < 0 {
		count = 0
	}
	row := make(Row[T], count)
	for i := 0; i < count; i++ {
		row[i] = f(i)
	}

	return Grid[T]{row}
}

// FromRows builds a grid from literal rows, copying each one so later
// changes to the arguments do not leak into the grid.
//
//	g := grid.FromRows(grid.Row[string]{"hello", "there"})
func FromRows[T any](rows ...Row[T]) Grid[T] {
	return Grid[T](rows).Clone()
}
