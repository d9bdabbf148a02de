package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"crossing/engine"
	"crossing/puzzle"
	"crossing/searcher"
)

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Solve river-crossing puzzles by uninformed state-space search",
	Long: `crossing searches the state graph of small river-crossing puzzles
(bridge-and-torch, wolf-goat-cabbage, humans-and-zombies) for a plan that
brings everyone to the far bank. The traversal order is depth-first or
breadth-first; the first plan found is printed, with no optimality claim.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("mode", "m", "bfs", "Search mode: dfs or bfs")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log the search as it runs")
}

// solve runs one search over the given starting state and prints the plan.
func solve(cmd *cobra.Command, initial puzzle.State) {
	modeName, _ := cmd.Flags().GetString("mode")
	mode, err := searcher.ParseMode(modeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	e := engine.New(initial, searcher.New(mode), os.Stdout)
	if plan, _ := e.Run(); plan == nil {
		os.Exit(1)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
