package main

import (
	"os"

	"github.com/aretw0/gridwalk/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [grid...]",
	Short: "Walk grids and print their results",
	Long: `Walks the named grids, or every grid when none is given, and prints one
result per line. Without --fixtures the built-in samples run in demo order.
A grid whose result differs from its expected output makes the command fail.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.RunOptions{
			Fixtures: cfg.Fixtures,
			Grids:    args,
			Style:    cfg.WalkStyle(),
		}
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Trace, _ = cmd.Flags().GetBool("trace")
		opts.Report, _ = cmd.Flags().GetBool("report")
		opts.Names, _ = cmd.Flags().GetBool("names")
		opts.FailFast, _ = cmd.Flags().GetBool("fail-fast")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		return cli.Run(ctx, opts, os.Stdout, logger)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Print results as NDJSON")
	runCmd.Flags().Bool("trace", false, "Print every step as NDJSON before the result")
	runCmd.Flags().Bool("report", false, "Print a markdown report per grid")
	runCmd.Flags().Bool("names", false, "Prefix results with the grid name and show mismatches")
	runCmd.Flags().Bool("fail-fast", false, "Stop at the first mismatching grid")
	runCmd.MarkFlagsMutuallyExclusive("json", "trace", "report")
}
