// SPDX-License-Identifier: MIT
package grid_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/grid"
)

//----------------------------------------------------------------------------//
// Shape & Clone
//----------------------------------------------------------------------------//

// TestGrid_Shape checks the row-count classification.
func TestGrid_Shape(t *testing.T) {
	cases := []struct {
		name  string
		g     grid.Grid[int]
		shape grid.Shape
	}{
		{"Nil", nil, grid.ShapeEmpty},
		{"Empty", grid.Grid[int]{}, grid.ShapeEmpty},
		{"FlatEmptyRow", grid.Grid[int]{{}}, grid.ShapeFlat},
		{"Flat", grid.Grid[int]{{1, 2}}, grid.ShapeFlat},
		{"Multi", grid.Grid[int]{{1}, {2}}, grid.ShapeMulti},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.shape, tc.g.Shape())
			assert.Equal(t, tc.shape == grid.ShapeFlat, tc.g.IsFlat())
			assert.Equal(t, tc.shape == grid.ShapeMulti, tc.g.IsMulti())
		})
	}
	assert.Equal(t, "multi", grid.ShapeMulti.String())
	assert.Equal(t, "unknown", grid.Shape(42).String())
}

// TestFromRows_Copies verifies that later writes to the literal do not leak.
func TestFromRows_Copies(t *testing.T) {
	src := grid.Row[int]{1, 2, 3, 4}
	g := grid.FromRows(src)
	src[0] = 99

	assert.Equal(t, grid.Grid[int]{{1, 2, 3, 4}}, g)
	assert.True(t, g.IsFlat())
}

// TestGrid_Append ensures Append leaves the receiver untouched.
func TestGrid_Append(t *testing.T) {
	g := grid.FromRows(grid.Row[int]{1})
	h := g.Append(grid.Row[int]{2, 3})

	assert.Equal(t, 1, g.Len())
	assert.Equal(t, grid.Grid[int]{{1}, {2, 3}}, h)

	h[0][0] = 7
	assert.Equal(t, 1, g[0][0], "Append must deep copy existing rows")
}

// TestEqual covers row count, row length and element differences.
func TestEqual(t *testing.T) {
	a := grid.Grid[int]{{1, 2}, {3}}
	assert.True(t, grid.Equal(a, a.Clone()))
	assert.True(t, grid.Equal[int](nil, grid.Grid[int]{}))
	assert.False(t, grid.Equal(a, grid.Grid[int]{{1, 2}}))
	assert.False(t, grid.Equal(a, grid.Grid[int]{{1, 2}, {3, 4}}))
	assert.False(t, grid.Equal(a, grid.Grid[int]{{1, 2}, {4}}))
}

//----------------------------------------------------------------------------//
// Generate
//----------------------------------------------------------------------------//

// TestGenerate checks length and element values for several counts.
func TestGenerate(t *testing.T) {
	square := func(i int) int { return i * i }
	for _, n := range []int{0, 1, 4, 10} {
		g := grid.Generate(n, square)
		require.True(t, g.IsFlat(), "Generate must return a flat grid")
		require.Len(t, g[0], n)
		for i, v := range g[0] {
			assert.Equal(t, square(i), v)
		}
	}
}

// TestGenerate_Negative treats a negative count as zero.
func TestGenerate_Negative(t *testing.T) {
	g := grid.Generate(-3, func(i int) int { return i })
	assert.Equal(t, grid.Grid[int]{{}}, g)
}

// TestGenerate_Closure ensures captured context is honored.
func TestGenerate_Closure(t *testing.T) {
	prefix := "id-"
	g := grid.Generate(3, func(i int) string { return prefix + strings.Repeat("x", i) })
	assert.Equal(t, grid.Grid[string]{{"id-", "id-x", "id-xx"}}, g)
}

//----------------------------------------------------------------------------//
// Map & Filter
//----------------------------------------------------------------------------//

// TestMap_PreservesShape checks row count, row lengths and values.
func TestMap_PreservesShape(t *testing.T) {
	w := grid.Grid[int]{{-1, 3, -3, 4}, {}, {5}}
	sign := func(x int) int {
		if x > 0 {
			return 1
		}
		return 0
	}
	got := grid.Map(w, sign)

	want := grid.Grid[int]{{0, 1, 0, 1}, {}, {1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Map mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, grid.Grid[int]{{-1, 3, -3, 4}, {}, {5}}, w, "input must not change")
}

// TestFilter_PerRow keeps order and row count.
func TestFilter_PerRow(t *testing.T) {
	w := grid.Grid[int]{{-1, 3, -3, 4}, {-2, -5}}
	got := grid.Filter(w, func(x int) bool { return x > 0 })

	require.Equal(t, w.Len(), got.Len())
	assert.Equal(t, grid.Row[int]{3, 4}, got[0])
	assert.Empty(t, got[1])
	for i := range got {
		assert.LessOrEqual(t, len(got[i]), len(w[i]))
	}
}

// TestMapFilter_Identity checks idempotence under identity / always-true.
func TestMapFilter_Identity(t *testing.T) {
	grids := []grid.Grid[int]{
		{},
		{{}},
		{{1, 2, 3, 4}},
		{{1, -1}, {2, 3}, {3, -3}},
	}
	for _, g := range grids {
		assert.True(t, grid.Equal(g, grid.Map(g, func(x int) int { return x })))
		assert.True(t, grid.Equal(g, grid.Filter(g, func(int) bool { return true })))
	}
}

// TestMapFilter_Empty maps and filters an empty grid to an empty grid.
func TestMapFilter_Empty(t *testing.T) {
	var g grid.Grid[int]
	assert.Equal(t, grid.ShapeEmpty, grid.Map(g, func(x int) int { return x + 1 }).Shape())
	assert.Equal(t, grid.ShapeEmpty, grid.Filter(g, func(int) bool { return false }).Shape())
}

//----------------------------------------------------------------------------//
// Reduce
//----------------------------------------------------------------------------//

// TestReduce_Sum folds across rows.
func TestReduce_Sum(t *testing.T) {
	add := func(a, b int) int { return a + b }
	got, err := grid.Reduce(grid.Grid[int]{{1, 2}, {3}}, add, grid.Row[int]{0})
	require.NoError(t, err)
	assert.Equal(t, grid.Row[int]{6}, got)
}

// TestReduce_RowMajorOrder relies on a non-commutative combine.
func TestReduce_RowMajorOrder(t *testing.T) {
	concat := func(a, b string) string { return a + b }

	got, err := grid.Reduce(grid.Grid[string]{{"a", "b"}}, concat, grid.Row[string]{""})
	require.NoError(t, err)
	assert.Equal(t, grid.Row[string]{"ab"}, got)

	got, err = grid.Reduce(grid.Grid[string]{{"hello", "there"}, {"franco", "carlacci"}}, concat, grid.Row[string]{""})
	require.NoError(t, err)
	assert.Equal(t, grid.Row[string]{"hellotherefrancocarlacci"}, got)

	runes := func(a, b rune) rune { return a + b }
	gotR, err := grid.Reduce(grid.Grid[rune]{{1, 2, 3}}, runes, grid.Row[rune]{0})
	require.NoError(t, err)
	assert.Equal(t, grid.Row[rune]{6}, gotR)
}

// TestReduce_Empty returns the identity.
func TestReduce_Empty(t *testing.T) {
	got, err := grid.Reduce(grid.Grid[int]{}, func(a, b int) int { return a * b }, grid.Row[int]{1})
	require.NoError(t, err)
	assert.Equal(t, grid.Row[int]{1}, got)
}

// TestReduce_BadIdentity rejects identities that are not a single element.
func TestReduce_BadIdentity(t *testing.T) {
	add := func(a, b int) int { return a + b }
	for _, id := range []grid.Row[int]{nil, {}, {0, 0}} {
		_, err := grid.Reduce(grid.Grid[int]{{1}}, add, id)
		assert.ErrorIs(t, err, grid.ErrShapeMismatch)
	}
}
