package main

import (
	"os"

	"github.com/aretw0/gridwalk"
	"github.com/aretw0/gridwalk/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gridwalk",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(os.Stdout, gridwalk.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
