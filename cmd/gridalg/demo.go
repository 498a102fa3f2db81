package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvgrid/grid"
)

const (
	zipRule    = "**********"
	reduceRule = "$$$$$$$$$$"
	rowSep     = " , "
)

func newDemoCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the full zip / generate / filter / map / reduce walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDemo(cmd)
		},
	}
}

func (c *cli) runDemo(cmd *cobra.Command) error {
	s, err := LoadSamples(c.dataPath)
	if err != nil {
		return err
	}
	c.logger.Debug("samples loaded", zap.String("path", c.dataPath), zap.Int("count", s.Count))

	out := cmd.OutOrStdout()
	if err := c.demoInts(out, s); err != nil {
		return err
	}

	return c.demoText(out, s)
}

// demoInts prints v, w, both zips and the generate/filter/map/reduce chain.
func (c *cli) demoInts(out io.Writer, s *Samples) error {
	rows := grid.WithSeparator(rowSep)
	v := grid.FromRows(grid.Row[int](s.V))
	w := grid.FromRows(grid.Row[int](s.W))

	fmt.Fprintln(out, grid.Format(v, rows))
	fmt.Fprintln(out, zipRule)
	fmt.Fprintln(out, grid.Format(w, rows))
	fmt.Fprintln(out, zipRule)

	pairs, err := grid.ZipPairs(v, w)
	if err != nil {
		return fmt.Errorf("first zip: %w", err)
	}
	c.logger.Debug("first zip", zap.Stringer("kind", pairs.Kind()), zap.Int("tuples", pairs.Len()))
	fmt.Fprintln(out, grid.FormatTuples[int](pairs))
	fmt.Fprintln(out, zipRule)

	quads, err := grid.ZipQuads(pairs, pairs)
	if err != nil {
		return fmt.Errorf("second zip: %w", err)
	}
	c.logger.Debug("second zip", zap.Stringer("kind", quads.Kind()), zap.Int("tuples", quads.Len()))
	fmt.Fprintln(out, grid.FormatTuples[int](quads))
	fmt.Fprintln(out, zipRule)

	squares := grid.Generate(s.Count, func(i int) int { return i * i })
	fmt.Fprintln(out, grid.Format(squares, rows))

	positive := grid.Filter(w, func(x int) bool { return x > 0 })
	fmt.Fprintln(out, grid.Format(positive, rows))

	signs := grid.Map(w, func(x int) int {
		if x > 0 {
			return 1
		}
		return 0
	})
	fmt.Fprintln(out, grid.Format(signs, rows))

	total, err := grid.Reduce(signs, func(a, b int) int { return a + b }, grid.Row[int]{0})
	if err != nil {
		return fmt.Errorf("reduce signs: %w", err)
	}
	fmt.Fprintln(out, grid.FormatRow(total))

	return nil
}

// demoText concatenates the word and character samples left to right.
func (c *cli) demoText(out io.Writer, s *Samples) error {
	concat := func(a, b string) string { return a + b }
	rows := grid.WithSeparator(rowSep)

	fmt.Fprintln(out, reduceRule)
	words := grid.FromRows(grid.Row[string](s.Words))
	fmt.Fprintln(out, grid.Format(words, rows))
	joined, err := grid.Reduce(words, concat, grid.Row[string]{""})
	if err != nil {
		return fmt.Errorf("reduce words: %w", err)
	}
	fmt.Fprintln(out, grid.FormatRow(joined))

	fmt.Fprintln(out, reduceRule)
	chars := grid.FromRows(grid.Row[rune]([]rune(s.Chars)))
	fmt.Fprintln(out, grid.Format(chars, rows, grid.WithVerb("%c")))

	letters := grid.Generate(len(chars[0]), func(i int) string { return string(chars[0][i]) })
	spelled, err := grid.Reduce(letters, concat, grid.Row[string]{""})
	if err != nil {
		return fmt.Errorf("reduce chars: %w", err)
	}
	fmt.Fprintln(out, reduceRule)
	fmt.Fprintln(out, grid.FormatRow(spelled))
	c.logger.Debug("demo finished")

	return nil
}
