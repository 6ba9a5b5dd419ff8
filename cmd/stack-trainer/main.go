// Command stack-trainer drills position recall on a memorized stack:
// it shows the suit colors of a run of consecutive cards at a random
// cyclic offset and loops until the first card of the run is named.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/stacklab/bracelet/bracelet"
	"github.com/stacklab/bracelet/deck"
	"github.com/stacklab/bracelet/stacks"
)

var (
	stackName string
	seed      int64
)

// suitBlock is the colored glyph shown for each card.
const suitBlock = "█"

var (
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	blackStyle = lipgloss.NewStyle()
)

var rootCmd = &cobra.Command{
	Use:   "stack-trainer",
	Short: "Drill suit-color position recall on a memorized stack",
	Long: `stack-trainer displays the suit colors of consecutive cards taken at
a random position of a reference stack. Enter the two-character value
and suit of the first shown card (e.g. AH); a correct answer presents
the next problem. Interrupt or close stdin to stop.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTrainer,
}

func init() {
	rootCmd.Flags().StringVar(&stackName, "stack", "red",
		"reference stack to drill (red or cherry)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0,
		"random seed for a reproducible session (0 = time-based)")
}

// colorRow renders the window's suit colors as one line of blocks.
func colorRow(s deck.Stack, start, length int) string {
	parts := make([]string, length)
	for j := 0; j < length; j++ {
		if s.At(start + j).Suit.Red() {
			parts[j] = redStyle.Render(suitBlock)
		} else {
			parts[j] = blackStyle.Render(suitBlock)
		}
	}
	return "    " + strings.Join(parts, " ")
}

func runTrainer(cmd *cobra.Command, args []string) error {
	stack, err := stacks.ByName(stackName)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	window := bracelet.CodeLength(stack.Len())

	fmt.Println("Enter a two-character value and suit, e.g. AH. If the correct")
	fmt.Println("answer is entered then another problem is presented.")

	in := bufio.NewScanner(os.Stdin)
	for {
		index := rng.Intn(stack.Len())
		want := stack.At(index)
		fmt.Println(colorRow(stack, index, window))
		for {
			fmt.Print("Enter a card > ")
			if !in.Scan() {
				fmt.Println()
				return in.Err()
			}
			guess, err := deck.ParseCard(in.Text())
			if err == nil && guess == want {
				break
			}
			fmt.Println("Wrong. Try Again")
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
