package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvgrid/grid"
)

// errNoRows is returned when zip is called without both rows.
var errNoRows = errors.New("gridalg: both --a and --b are required")

type zipFlags struct {
	a, b       []int
	quads      bool
	interleave bool
	rows       bool
}

func newZipCmd(c *cli) *cobra.Command {
	f := &zipFlags{}
	cmd := &cobra.Command{
		Use:   "zip",
		Short: "Zip two integer rows into pairs, and optionally into 4-tuples",
		Long: `Zip pairs --a and --b element by element (the first zip). With --quads the
pairs are zipped with themselves (the second zip), producing 4-tuples.

Example:
  gridalg zip --a 1,2,3,4 --b=-1,3,-3,4 --quads`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runZip(cmd, f)
		},
	}
	cmd.Flags().IntSliceVar(&f.a, "a", nil, "first row, comma separated")
	cmd.Flags().IntSliceVar(&f.b, "b", nil, "second row, comma separated")
	cmd.Flags().BoolVar(&f.quads, "quads", false, "zip the pairs again into 4-tuples")
	cmd.Flags().BoolVar(&f.interleave, "interleave", false, "print the flat interleaved view")
	cmd.Flags().BoolVar(&f.rows, "rows", false, "print one bracketed row per tuple")

	return cmd
}

func (c *cli) runZip(cmd *cobra.Command, f *zipFlags) error {
	if len(f.a) == 0 || len(f.b) == 0 {
		return errNoRows
	}
	out := cmd.OutOrStdout()

	var z grid.ZipResult[int]
	pairs, err := grid.ZipPairs(grid.FromRows(grid.Row[int](f.a)), grid.FromRows(grid.Row[int](f.b)))
	if err != nil {
		return err
	}
	z = pairs
	if f.quads {
		quads, err := grid.ZipQuads(pairs, pairs)
		if err != nil {
			return err
		}
		z = quads
	}
	c.logger.Debug("zipped", zap.Stringer("kind", z.Kind()), zap.Int("tuples", z.Len()))

	switch {
	case f.interleave:
		fmt.Fprintln(out, grid.FormatRow(grid.Interleave(z)))
	case f.rows:
		fmt.Fprintln(out, grid.Format(z.Grid()))
	default:
		fmt.Fprintln(out, grid.FormatTuples(z))
	}

	return nil
}
