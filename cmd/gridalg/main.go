// Command gridalg demonstrates the grid algebra on fixed sample data:
// zipping, generating, filtering, mapping and reducing two-level grids.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli carries flag values and the logger shared by subcommands.
type cli struct {
	verbose  bool
	dataPath string
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "gridalg",
		Short: "Generate, map, filter, reduce and zip two-level grids",
		Long: `gridalg runs the grid algebra over sample data and prints the results.

Without a subcommand it runs the full demo. Sample data can be replaced
with a YAML file (--data) holding any of the keys v, w, count, words, chars.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDemo(cmd)
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.dataPath, "data", "", "YAML file with sample data")

	root.AddCommand(newDemoCmd(c), newZipCmd(c))

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
