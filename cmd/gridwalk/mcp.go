package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aretw0/gridwalk/internal/cli"
	"github.com/aretw0/gridwalk/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes grid walks to AI agents as MCP tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		loader, err := cli.OpenLoader(cfg.Fixtures)
		if err != nil {
			return err
		}
		srv := mcp.NewServer(cli.NewEngine(logger, nil), loader, logger)

		switch transport {
		case "stdio":
			logger.Info("starting gridwalk MCP server (stdio)")
			return srv.ServeStdio()
		case "sse":
			logger.Info("starting gridwalk MCP server (sse)", "port", port)

			ctx := cli.NewSignalContext(cmd.Context())
			defer ctx.Cancel()

			if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			logger.Info("MCP server stopped gracefully", "reason", cli.ShutdownReason(ctx))
			return nil
		default:
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
