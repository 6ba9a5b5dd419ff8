// Command eval-table prints the rank evaluation table for four
// classifiers, used when designing new bracelet sequences.
//
// The single argument is a comma-delimited list of exactly four
// classifier names with no spaces:
//
//	eval-table ODD,7K,8K,4T
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stacklab/bracelet/evaltable"
)

var (
	verbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "eval-table <codes>",
	Short: "Print the rank evaluation table for four classifiers",
	Long: `eval-table enumerates all 16 polarity combinations of four named
classifiers and lists, for each combination, the card ranks that satisfy
every classifier with exactly that polarity. The table is the design aid
for new bracelet sequences; it consumes no card stack.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := evaltable.ParseCodes(args[0])
		if err != nil {
			return err
		}
		logger.Debug("building table", zap.Strings("codes", names))
		table, err := evaltable.Build(names...)
		if err != nil {
			return err
		}
		fmt.Print(table.Render())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
