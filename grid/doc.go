// SPDX-License-Identifier: MIT

// Package grid implements a small algebra over two-level nested sequences:
// a Grid is an ordered list of Rows, a Row is an ordered list of values of
// one element type T.
//
// 🚀 Operations:
//
//	Generate  — build a flat (single-row) grid from an index function
//	FromRows  — build a grid from literal rows
//	Map       — apply f : T → T to every element, shape preserved
//	Filter    — keep elements satisfying a predicate, row count preserved
//	Reduce    — fold every element row-major, left to right, into one value
//	Zip       — pair two flat grids, or escalate a paired grid to 4-tuples
//	Format    — render any grid as bracketed, comma-separated text
//
// ✨ Zip is arity-aware. The first application pairs two flat grids into a
// PairGrid (one row per index, each row [a_i, b_i]). Zipping two PairGrids
// yields a QuadGrid whose rows are [a_i0, a_i1, b_i0, b_i1]. The two variants
// share the ZipResult interface, so callers can state which shape they
// expect (ZipPairs / ZipQuads) or let Zip dispatch on the input shape.
//
// Every operation is pure: inputs are never mutated and each call returns a
// freshly allocated result. Nothing is shared, nothing is locked.
//
// ⚙️ Usage:
//
//	v := grid.FromRows(grid.Row[int]{1, 2, 3, 4})
//	w := grid.FromRows(grid.Row[int]{-1, 3, -3, 4})
//
//	pairs, _ := grid.ZipPairs(v, w)    // [1 -1] [2 3] [3 -3] [4 4]
//	quads, _ := grid.ZipQuads(pairs, pairs)
//	fmt.Println(grid.FormatTuples(quads))
//
//	sum, _ := grid.Reduce(w, func(a, b int) int { return a + b }, grid.Row[int]{0})
//	fmt.Println(grid.FormatRow(sum)) // 3
//
// Errors are package sentinels (ErrTypeMismatch, ErrShapeMismatch) wrapped
// with the failing operation's tag; match them with errors.Is.
package grid
