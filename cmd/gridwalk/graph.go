package main

import (
	"os"

	"github.com/aretw0/gridwalk/internal/cli"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <grid>",
	Short: "Export a grid walk as a Mermaid flowchart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Graph(cmd.Context(), cfg.Fixtures, args[0], os.Stdout, logger)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
