package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "maneuversched",
		Short:         "Maneuver scheduling heuristics for power restoration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSolveCmd())
	root.AddCommand(newBenchCmd())

	return root
}
