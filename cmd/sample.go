package cmd

import (
	"fmt"

	"github.com/ledgerlens/backend/internal/sample"
	"github.com/spf13/cobra"
)

var (
	flagMonths     int
	flagSeed       uint64
	flagCategories bool
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a generated statement to stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if flagMonths < 1 || flagMonths > sample.MaxMonths {
			return fmt.Errorf("--months must be between 1 and %d", sample.MaxMonths)
		}

		transactions := sample.Generate(sample.Options{Months: flagMonths, Seed: flagSeed})
		return sample.WriteCSV(cmd.OutOrStdout(), transactions, flagCategories)
	},
}

func init() {
	sampleCmd.Flags().IntVarP(&flagMonths, "months", "m", sample.DefaultMonths, "Number of months")
	sampleCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "Seed for a reproducible statement, 0 for a random one")
	sampleCmd.Flags().BoolVar(&flagCategories, "categories", false, "Include the category column")

	rootCmd.AddCommand(sampleCmd)
}
