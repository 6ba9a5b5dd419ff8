// Command bracelet-test reads a card deck from the system clipboard
// (or a file, or stdin) and tests it for bracelet codes: one scan per
// deck-test classifier plus the quaternary suitability test.
//
// Example input:
//
//	QH, 7C, 8S, 2D, 3C, AH, 5S, QD, QS, 2C, 6S, KS, 3S,
//	KD, 7D, 9D, 5C, 2S, AC, 6C, 5H, 8C, 7H, 10H, 4D, 8D,
//	KH, 6D, QC, 5D, 7S, AD, 2H, JC, KC, 10D, 4C, 10C, JS,
//	4H, 10S, 4S, JH, 3D, AS, 9H, 3H, 6H, 9C, JD, 8H, 9S
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stacklab/bracelet/bracelet"
	"github.com/stacklab/bracelet/deck"
)

var (
	showFailures bool
	inputFile    string
	verbose      bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "bracelet-test",
	Short: "Test a card deck for bracelet codes",
	Long: `bracelet-test reads a card deck from the system clipboard and tests
it for binary bracelet codes and for the base-4 suit bracelet code used
by the Suitability routine.

Cards are two-character tokens (rank then suit, "10" accepted for T),
separated by commas or whitespace; unrecognizable tokens are ignored.`,
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
	RunE: runBraceletTest,
}

func init() {
	rootCmd.Flags().BoolVarP(&showFailures, "show", "s", false,
		"show the code collisions that invalidate a bracelet code")
	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "",
		"read the deck from a file instead of the clipboard (\"-\" for stdin)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

// readDeckText fetches the raw deck text from the selected source.
func readDeckText() (string, error) {
	switch inputFile {
	case "":
		text, err := clipboard.ReadAll()
		if err != nil {
			return "", fmt.Errorf("reading clipboard: %w", err)
		}
		return text, nil
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", inputFile, err)
		}
		return string(data), nil
	}
}

func runBraceletTest(cmd *cobra.Command, args []string) error {
	text, err := readDeckText()
	if err != nil {
		return err
	}
	stack := deck.ParseStack(text)
	fmt.Printf("The stack contains %d cards.\n", stack.Len())
	if stack.Len() < 2 {
		// Nothing further to test; the count line is the whole report.
		return nil
	}
	logger.Debug("parsed stack",
		zap.Int("cards", stack.Len()),
		zap.Int("window", bracelet.CodeLength(stack.Len())))

	report, err := bracelet.VerifyDeck(stack, bracelet.WithReportAll(showFailures))
	if err != nil {
		return err
	}
	for _, res := range report.Results {
		if showFailures {
			for _, col := range res.Collisions {
				fmt.Printf("Sequence %s has duplicate code %s at index %d\n",
					res.Name, col.Code, col.DupIndex)
			}
		}
		if res.Unique {
			fmt.Printf("%s sequence found\n", res.Name)
		}
	}
	if showFailures {
		for _, col := range report.Suit.Collisions {
			fmt.Printf("Duplicate code %s at index %d\n", col.Code, col.DupIndex)
		}
	}
	if report.Suit.Unique {
		fmt.Println("Suitability supported")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
