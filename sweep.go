package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"crossing/experiments"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Solve a batch of scenarios under both modes and write CSV metrics",
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("scenarios")
		random, _ := cmd.Flags().GetInt("random")
		seed, _ := cmd.Flags().GetUint64("seed")
		goroutines, _ := cmd.Flags().GetInt("goroutines")
		out, _ := cmd.Flags().GetString("out")

		var scenarios []experiments.Scenario
		var err error
		switch {
		case path != "":
			scenarios, err = experiments.LoadScenarios(path)
		case random > 0:
			scenarios = experiments.RandomScenarios(random, seed)
		default:
			err = fmt.Errorf("need --scenarios or --random")
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		records, err := experiments.Run(scenarios, goroutines)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		dir, err := experiments.Write(out, scenarios, records)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d records to %s\n", len(records), dir)
	},
}

func init() {
	sweepCmd.Flags().String("scenarios", "", "YAML file of scenarios to solve")
	sweepCmd.Flags().Int("random", 0, "Sample this many random scenarios instead")
	sweepCmd.Flags().Uint64("seed", 1, "Seed for random scenarios")
	sweepCmd.Flags().Int("goroutines", 4, "Number of concurrent searches")
	sweepCmd.Flags().String("out", "sweeps", "Directory for CSV output")

	rootCmd.AddCommand(sweepCmd)
}
