// SPDX-License-Identifier: MIT

package grid

// Map applies f to every element of every row and returns the results in a
// new grid of identical shape: same row count, same row lengths, same order.
// An empty grid maps to an empty grid.
// Complexity: O(N) over all elements.
func Map[T any](g Grid[T], f func(T) T) Grid[T] {
	out := make(Grid[T], len(g))
	for i, r := range g {
		mapped := make(Row[T], len(r))
		for j, v := range r {
			mapped[j] = f(v)
		}
		out[i] = mapped
	}

	return out
}

// Filter keeps, per row, the elements for which pred holds, in their
// original relative order. The row count never changes; individual rows may
// shrink independently, down to empty.
// Complexity: O(N) over all elements.
func Filter[T any](g Grid[T], pred func(T) bool) Grid[T] {
	out := make(Grid[T], len(g))
	for i, r := range g {
		kept := make(Row[T], 0, len(r))
		for _, v := range r {
			if pred(v) {
				kept = append(kept, v)
			}
		}
		out[i] = kept
	}

	return out
}
