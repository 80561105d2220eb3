package main

import (
	"os"

	"github.com/aretw0/gridwalk/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check fixtures for consistency",
	Long: `Walks every fixture through both styles and reports grids whose faces
disagree or whose result differs from the expected output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Validate(cmd.Context(), cfg.Fixtures, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
