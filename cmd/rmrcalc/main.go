package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "rmrcalc",
		Short:        "Rock Mass Rating and roof bolt support calculator",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(evaluateCmd())
	rootCmd.AddCommand(optionsCmd())
	rootCmd.AddCommand(serveCmd())
	return rootCmd
}
