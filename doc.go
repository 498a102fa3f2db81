// Package lvgrid is a small, pure-Go algebra over two-level nested
// sequences: grids of rows.
//
// 🚀 What is in the box?
//
//	grid/        — Grid & Row types, Generate, Map, Filter, Reduce,
//	               arity-aware Zip (PairGrid / QuadGrid) and Format
//	cmd/gridalg/ — a command-line walkthrough over sample data
//
// ✨ Why lvgrid?
//
//   - Generic – one implementation for ints, strings, runes or any T
//   - Pure – every operation returns a fresh grid, nothing is mutated
//   - Explicit – zip results are typed variants, not inferred modes
//
// Quick example:
//
//	[1, 2, 3, 4] zip [-1, 3, -3, 4]  →  [(1 -1) , (2 3) , (3 -3) , (4 4)]
//	pairs zip pairs                  →  [(1 -1 1 -1) , (2 3 2 3) , ...]
//
//	go get github.com/katalvlaran/lvgrid/grid
package lvgrid
