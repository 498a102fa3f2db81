// SPDX-License-Identifier: MIT

package grid

// Reduce folds every element of g into a single value with combine, seeded
// with identity[0], and returns it as a one-element Row.
//
// Traversal is strictly row-major: row 0 first, each row from element 0
// upward, accumulating acc = combine(acc, e). The order is fixed so that
// non-commutative combine functions (string concatenation, for instance)
// give reproducible results. An empty grid returns a copy of identity.
//
// Errors:
//   - ErrShapeMismatch if identity does not hold exactly one element.
//
// Complexity: O(N) time, O(1) extra memory.
func Reduce[T any](g Grid[T], combine func(T, T) T, identity Row[T]) (Row[T], error) {
	if len(identity) != 1 {
		return nil, gridErrorf(opReduce, ErrShapeMismatch)
	}
	acc := identity[0]
	for _, r := range g {
		for _, v := range r {
			acc = combine(acc, v)
		}
	}

	return Row[T]{acc}, nil
}
