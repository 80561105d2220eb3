package main

import (
	"os"

	"github.com/aretw0/gridwalk/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <grid>",
	Short: "Print a grid annotated with its visit order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Show(cmd.Context(), cfg.Fixtures, args[0], cfg.WalkStyle(), os.Stdout, logger)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
