// SPDX-License-Identifier: MIT

package grid

import "reflect"

// ZipKind names the variant of a ZipResult. Its value is the tuple arity.
type ZipKind int

const (
	// KindPair marks a PairGrid: every row is [a_i, b_i].
	KindPair ZipKind = 2
	// KindQuad marks a QuadGrid: every row is [a_i0, a_i1, b_i0, b_i1].
	KindQuad ZipKind = 4
)

// Arity returns the number of elements in each row of a result of kind k.
func (k ZipKind) Arity() int { return int(k) }

// String returns "pair" or "quad".
func (k ZipKind) String() string {
	switch k {
	case KindPair:
		return "pair"
	case KindQuad:
		return "quad"
	default:
		return "unknown"
	}
}

// ZipResult is the closed set of zip outputs: PairGrid or QuadGrid.
// The unexported method keeps other packages from adding variants.
type ZipResult[T any] interface {
	// Kind reports which variant this is.
	Kind() ZipKind
	// Grid returns a copy of the tuples as a grid, one row per tuple.
	Grid() Grid[T]
	// Len returns the number of tuples.
	Len() int

	zipResult()
}

// PairGrid is a grid whose every row holds exactly two elements.
// The zero value is an empty PairGrid.
type PairGrid[T any] struct {
	rows Grid[T]
}

// Kind returns KindPair.
func (PairGrid[T]) Kind() ZipKind { return KindPair }

// Grid returns a copy of the pairs, one row per pair.
func (p PairGrid[T]) Grid() Grid[T] { return p.rows.Clone() }

// Len returns the number of pairs.
func (p PairGrid[T]) Len() int { return len(p.rows) }

// Pair returns the i-th pair. It panics if i is out of range, like a slice index.
func (p PairGrid[T]) Pair(i int) (T, T) {
	r := p.rows[i]

	return r[0], r[1]
}

func (PairGrid[T]) zipResult() {}

// QuadGrid is a grid whose every row holds exactly four elements.
// The zero value is an empty QuadGrid.
type QuadGrid[T any] struct {
	rows Grid[T]
}

// Kind returns KindQuad.
func (QuadGrid[T]) Kind() ZipKind { return KindQuad }

// Grid returns a copy of the 4-tuples, one row per tuple.
func (q QuadGrid[T]) Grid() Grid[T] { return q.rows.Clone() }

// Len returns the number of 4-tuples.
func (q QuadGrid[T]) Len() int { return len(q.rows) }

// Quad returns the i-th 4-tuple. It panics if i is out of range.
func (q QuadGrid[T]) Quad(i int) [4]T {
	r := q.rows[i]

	return [4]T{r[0], r[1], r[2], r[3]}
}

func (QuadGrid[T]) zipResult() {}

// ZipPairs is the first zip: it pairs the single rows of two flat grids
// element by element. Row i of the result is [a_i, b_i]. Iteration stops at
// the shorter row; trailing elements of the longer one are dropped.
//
// An empty grid on either side yields an empty PairGrid.
//
// Errors:
//   - ErrTypeMismatch if the grids hold elements of different dynamic types.
//   - ErrShapeMismatch if a non-empty input is not flat.
//
// Complexity: O(min(len(a0), len(b0))).
func ZipPairs[T any](a, b Grid[T]) (PairGrid[T], error) {
	if err := checkElemTypes(a, b); err != nil {
		return PairGrid[T]{}, gridErrorf(opZipPairs, err)
	}
	p, err := zipPairs(a, b)
	if err != nil {
		return PairGrid[T]{}, gridErrorf(opZipPairs, err)
	}

	return p, nil
}

// ZipQuads is the second zip: it escalates two PairGrids into 4-tuples.
// Row i of the result is [a_i0, a_i1, b_i0, b_i1], so zipping a PairGrid
// with itself repeats each pair: [1 -1] becomes [1 -1 1 -1].
// The result has min(a.Len(), b.Len()) rows.
//
// Errors:
//   - ErrTypeMismatch if the grids hold elements of different dynamic types.
//
// Complexity: O(min(a.Len(), b.Len())).
func ZipQuads[T any](a, b PairGrid[T]) (QuadGrid[T], error) {
	if err := checkElemTypes(a.rows, b.rows); err != nil {
		return QuadGrid[T]{}, gridErrorf(opZipQuads, err)
	}

	return zipQuads(a, b), nil
}

// Zip combines two grids, choosing the variant from their shape on every
// call:
//
//	either empty        → empty PairGrid
//	flat  × flat        → ZipPairs
//	multi × multi pairs → ZipQuads
//	anything else       → ErrShapeMismatch
//
// Zip keeps the row-count dispatch of the classic contract. Callers that
// know which shape they hold should prefer ZipPairs / ZipQuads: a PairGrid
// with a single pair is flat, and Zip would pair it again instead of
// escalating it.
//
// Errors:
//   - ErrTypeMismatch if the grids hold elements of different dynamic types.
//   - ErrShapeMismatch as listed above.
func Zip[T any](a, b Grid[T]) (ZipResult[T], error) {
	if err := checkElemTypes(a, b); err != nil {
		return nil, gridErrorf(opZip, err)
	}
	switch {
	case len(a) == 0 || len(b) == 0:
		return PairGrid[T]{rows: Grid[T]{}}, nil
	case a.IsFlat() && b.IsFlat():
		p, err := zipPairs(a, b)
		if err != nil {
			return nil, gridErrorf(opZip, err)
		}

		return p, nil
	case a.IsMulti() && b.IsMulti():
		pa, err := asPairs(a)
		if err != nil {
			return nil, gridErrorf(opZip, err)
		}
		pb, err := asPairs(b)
		if err != nil {
			return nil, gridErrorf(opZip, err)
		}

		return zipQuads(pa, pb), nil
	default:
		return nil, gridErrorf(opZip, ErrShapeMismatch)
	}
}

// AsPairs validates that every row of g holds exactly two elements and
// returns a PairGrid over a copy of g.
//
// Errors:
//   - ErrShapeMismatch if any row length differs from 2.
func AsPairs[T any](g Grid[T]) (PairGrid[T], error) {
	p, err := asPairs(g)
	if err != nil {
		return PairGrid[T]{}, gridErrorf(opAsPairs, err)
	}

	return p, nil
}

func zipPairs[T any](a, b Grid[T]) (PairGrid[T], error) {
	if len(a) == 0 || len(b) == 0 {
		return PairGrid[T]{rows: Grid[T]{}}, nil
	}
	if !a.IsFlat() || !b.IsFlat() {
		return PairGrid[T]{}, ErrShapeMismatch
	}
	ar, br := a[0], b[0]
	n := min(len(ar), len(br))
	rows := make(Grid[T], n)
	for i := 0; i < n; i++ {
		rows[i] = Row[T]{ar[i], br[i]}
	}

	return PairGrid[T]{rows: rows}, nil
}

func zipQuads[T any](a, b PairGrid[T]) QuadGrid[T] {
	n := min(len(a.rows), len(b.rows))
	rows := make(Grid[T], n)
	for i := 0; i < n; i++ {
		x, y := a.rows[i], b.rows[i]
		rows[i] = Row[T]{x[0], x[1], y[0], y[1]}
	}

	return QuadGrid[T]{rows: rows}
}

func asPairs[T any](g Grid[T]) (PairGrid[T], error) {
	for _, r := range g {
		if len(r) != KindPair.Arity() {
			return PairGrid[T]{}, ErrShapeMismatch
		}
	}

	return PairGrid[T]{rows: g.Clone()}, nil
}

// checkElemTypes compares the dynamic type of the first element of a and b.
// For a concrete T the types always agree; the check matters when T is an
// interface such as any. Grids without elements carry no type and pass.
func checkElemTypes[T any](a, b Grid[T]) error {
	ta, okA := firstElemType(a)
	tb, okB := firstElemType(b)
	if okA && okB && ta != tb {
		return ErrTypeMismatch
	}

	return nil
}

func firstElemType[T any](g Grid[T]) (reflect.Type, bool) {
	for _, r := range g {
		if len(r) > 0 {
			return reflect.TypeOf(any(r[0])), true
		}
	}

	return nil, false
}
