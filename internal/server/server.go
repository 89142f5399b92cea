package server

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"mutman.dev/pkg/mutman/internal/domain"
)

const (
	serverName    = "mutman"
	serverVersion = "0.1.0"
)

// Server wraps an MCP server exposing the orchestrator's operations as
// tools over a transport.
type Server struct {
	mcpServer *mcp.Server
}

// New builds a Server with every orchestration tool registered.
func New(orch *domain.Orchestrator) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(mcpServer, RunMutmutTool(), RunMutmutHandler(orch))
	mcp.AddTool(mcpServer, ShowResultsTool(), ShowResultsHandler(orch))
	mcp.AddTool(mcpServer, ShowSurvivorsTool(), ShowSurvivorsHandler(orch))
	mcp.AddTool(mcpServer, SuggestionTool(), SuggestionHandler(orch))
	mcp.AddTool(mcpServer, RerunTool(), RerunHandler(orch))
	mcp.AddTool(mcpServer, CleanTool(), CleanHandler(orch))
	mcp.AddTool(mcpServer, ShowMutantTool(), ShowMutantHandler(orch))
	mcp.AddTool(mcpServer, PrioritizeTool(), PrioritizeHandler(orch))

	return &Server{mcpServer: mcpServer}
}

// Serve runs the server on stdio until the client disconnects or the
// context ends. Context cancellation is a normal shutdown, not an error.
func (s *Server) Serve(ctx context.Context) error {
	return s.ServeTransport(ctx, &mcp.StdioTransport{})
}

// ServeTransport runs the server on the provided transport.
func (s *Server) ServeTransport(ctx context.Context, transport mcp.Transport) error {
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}

	return err
}
