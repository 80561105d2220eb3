package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/gridwalk/internal/cli"
	"github.com/aretw0/gridwalk/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gridwalk",
	Short: "Gridwalk walks token grids along their direction glyphs",
	Long: `Gridwalk starts at the top-left cell of a grid heading right, follows the
direction glyphs (> < ^ v) found at the start of tokens, and prints the tokens
it visits until the cursor leaves the grid or comes back to a visited cell.

Settings are read from GRIDWALK_* environment variables; flags override them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		cfg = loaded
		logger = cli.NewLogger(cfg.LogLevel, cfg.LogFormat)
		slog.SetDefault(logger)
		return nil
	},
}

// loadConfig reads the environment, applies flag overrides, then validates once.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	loaded, err := config.Parse()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		loaded.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("style") {
		loaded.Style, _ = flags.GetString("style")
	}
	if flags.Changed("fixtures") {
		loaded.Fixtures, _ = flags.GetString("fixtures")
	}
	if err := loaded.Validate(); err != nil {
		return config.Config{}, err
	}
	return loaded, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	registerPersistentFlags(rootCmd)
}

// registerPersistentFlags adds the flags available to all commands.
func registerPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
	cmd.PersistentFlags().String("style", "object", "Walk style: object or function")
	cmd.PersistentFlags().String("fixtures", "", "Fixture file or directory (default: built-in samples)")
}
