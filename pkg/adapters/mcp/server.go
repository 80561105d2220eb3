package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/gridwalk"
	"github.com/aretw0/gridwalk/internal/compiler"
	"github.com/aretw0/gridwalk/internal/logging"
	"github.com/aretw0/gridwalk/pkg/domain"
	"github.com/aretw0/gridwalk/pkg/ports"
	"github.com/aretw0/gridwalk/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// GridsURI is the resource listing the loaded fixtures.
const GridsURI = "gridwalk://grids"

// WalkGridArgs are the arguments of the walk_grid tool.
type WalkGridArgs struct {
	Rows  string `json:"rows"`
	Name  string `json:"name,omitempty"`
	Style string `json:"style,omitempty"`
}

// WalkFixtureArgs are the arguments of the walk_fixture tool.
type WalkFixtureArgs struct {
	Name  string `json:"name"`
	Style string `json:"style,omitempty"`
}

// Server wraps a gridwalk Engine and exposes it as an MCP Server.
type Server struct {
	engine    *gridwalk.Engine
	loader    ports.GridLoader
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine *gridwalk.Engine, loader ports.GridLoader, logger *slog.Logger) *Server {
	if engine == nil {
		engine = gridwalk.New()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		engine:    engine,
		loader:    loader,
		logger:    logger,
		mcpServer: server.NewMCPServer("gridwalk-mcp", strings.TrimSpace(gridwalk.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: walk_grid
	walkTool := mcp.NewTool("walk_grid",
		mcp.WithDescription("Walk a glyph grid from the top-left cell heading right and return the emitted payloads."),
		mcp.WithString("rows", mcp.Required(), mcp.Description(`Grid as a JSON array of rows (e.g. [["HI","v1"],["x","<2"]]) or as plain text, one row per line with whitespace-separated tokens`)),
		mcp.WithString("name", mcp.Description("Optional label echoed in the result")),
		mcp.WithString("style", mcp.Description("API face to use: object (default) or function")),
		mcp.WithOutputSchema[runner.Result](),
	)
	s.mcpServer.AddTool(walkTool, mcp.NewStructuredToolHandler(s.handleWalkGrid))

	// TOOL: walk_fixture
	fixtureTool := mcp.NewTool("walk_fixture",
		mcp.WithDescription("Walk a named fixture and compare the result with its expectation."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Fixture name, see list_grids")),
		mcp.WithString("style", mcp.Description("API face to use: object (default) or function")),
		mcp.WithOutputSchema[runner.Result](),
	)
	s.mcpServer.AddTool(fixtureTool, mcp.NewStructuredToolHandler(s.handleWalkFixture))

	// TOOL: list_grids
	s.mcpServer.AddTool(mcp.NewTool("list_grids",
		mcp.WithDescription("List the names of the loaded fixtures."),
	), s.handleListGrids)
}

func (s *Server) handleListGrids(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := s.loader.ListGrids(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
	}
	jsonBytes, _ := json.Marshal(names)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleWalkGrid(ctx context.Context, request mcp.CallToolRequest, args WalkGridArgs) (runner.Result, error) {
	grid, err := parseRows(args.Rows)
	if err != nil {
		s.logger.Warn("MCP walk_grid: grid rejected", "err", err)
		return runner.Result{}, err
	}
	return s.walk(ctx, args.Style, domain.Fixture{Name: args.Name, Grid: grid})
}

func (s *Server) handleWalkFixture(ctx context.Context, request mcp.CallToolRequest, args WalkFixtureArgs) (runner.Result, error) {
	fx, err := s.loader.GetFixture(ctx, args.Name)
	if err != nil {
		return runner.Result{}, err
	}
	return s.walk(ctx, args.Style, fx)
}

func (s *Server) walk(ctx context.Context, rawStyle string, fx domain.Fixture) (runner.Result, error) {
	style, err := gridwalk.ParseStyle(rawStyle)
	if err != nil {
		return runner.Result{}, err
	}
	rn := runner.NewRunner(
		runner.WithEngine(s.engine),
		runner.WithLogger(s.logger),
		runner.WithStyle(style),
		runner.WithHandler(runner.NewTextHandler(io.Discard)),
	)
	return rn.Walk(ctx, fx)
}

// parseRows accepts a JSON array of rows or the plain-text grid format.
// Input that is not valid JSON is read as text, so a first token such as
// "[x" is an ordinary cell.
func parseRows(raw string) (domain.Grid, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") && json.Valid([]byte(trimmed)) {
		var rows [][]string
		if err := json.Unmarshal([]byte(trimmed), &rows); err != nil {
			return domain.Grid{}, fmt.Errorf("invalid rows json: %w", err)
		}
		return domain.NewGrid(rows)
	}
	return compiler.NewParser().Parse([]byte(raw))
}

func (s *Server) registerResources() {
	// EXPOSE: gridwalk://grids
	s.mcpServer.AddResource(mcp.NewResource(GridsURI, "Loaded grid fixtures",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		names, err := s.loader.ListGrids(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list grids: %w", err)
		}
		jsonBytes, _ := json.Marshal(names)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      GridsURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
