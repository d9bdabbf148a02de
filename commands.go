package main

import (
	"github.com/spf13/cobra"

	"crossing/puzzle/bridge"
	"crossing/puzzle/wolfgoat"
	"crossing/puzzle/zombies"
)

var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Bridge-and-torch: cross the bridge before the torch burns out",
	Run: func(cmd *cobra.Command, args []string) {
		times, _ := cmd.Flags().GetIntSlice("times")
		capacity, _ := cmd.Flags().GetInt("capacity")
		torch, _ := cmd.Flags().GetInt("torch")
		solve(cmd, bridge.New(times, capacity, torch))
	},
}

var wolfGoatCmd = &cobra.Command{
	Use:   "wolf-goat-cabbage",
	Short: "Wolf-goat-cabbage: ferry the farmer's cargo without losses",
	Run: func(cmd *cobra.Command, args []string) {
		farmers, _ := cmd.Flags().GetInt("farmers")
		wolves, _ := cmd.Flags().GetInt("wolves")
		goats, _ := cmd.Flags().GetInt("goats")
		cabbages, _ := cmd.Flags().GetInt("cabbages")
		boat, _ := cmd.Flags().GetInt("boat")
		solve(cmd, wolfgoat.New(farmers, wolves, goats, cabbages, boat))
	},
}

var zombiesCmd = &cobra.Command{
	Use:   "humans-and-zombies",
	Short: "Humans-and-zombies: never leave humans outnumbered on a bank",
	Run: func(cmd *cobra.Command, args []string) {
		humans, _ := cmd.Flags().GetInt("humans")
		zombieCount, _ := cmd.Flags().GetInt("zombies")
		boat, _ := cmd.Flags().GetInt("boat")
		solve(cmd, zombies.New(humans, zombieCount, boat))
	},
}

func init() {
	bridgeCmd.Flags().IntSlice("times", []int{1, 2, 5, 8}, "Walking time of each person")
	bridgeCmd.Flags().Int("capacity", 2, "How many people the bridge holds")
	bridgeCmd.Flags().Int("torch", 15, "How long the torch burns")

	wolfGoatCmd.Flags().Int("farmers", 1, "The number of farmers on the river bank")
	wolfGoatCmd.Flags().Int("wolves", 1, "The number of wolves on the river bank")
	wolfGoatCmd.Flags().Int("goats", 1, "The number of goats on the river bank")
	wolfGoatCmd.Flags().Int("cabbages", 1, "The number of cabbages on the river bank")
	wolfGoatCmd.Flags().Int("boat", 2, "The capacity of the boat")

	zombiesCmd.Flags().IntP("humans", "H", 3, "The number of humans on the river bank")
	zombiesCmd.Flags().IntP("zombies", "Z", 3, "The number of zombies on the river bank")
	zombiesCmd.Flags().IntP("boat", "B", 2, "The capacity of the boat")

	rootCmd.AddCommand(bridgeCmd, wolfGoatCmd, zombiesCmd)
}
