package server

import (
	"context"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mutman.dev/pkg/mutman/internal/adapter"
	"mutman.dev/pkg/mutman/internal/domain"
)

func newLocalServer() *Server {
	orch := domain.NewOrchestrator(
		adapter.NewLocalEnvResolver(),
		adapter.NewLocalProcessRunner(),
		adapter.NewLocalCacheAdapter(),
		domain.Config{RunTimeout: time.Minute, QueryTimeout: time.Minute},
	)

	return New(orch)
}

func TestServer_RegistersEveryTool(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := newLocalServer()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ServeTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)

	clientCtx, clientCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer clientCancel()

	session, err := client.Connect(clientCtx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	listed, err := session.ListTools(clientCtx, nil)
	require.NoError(t, err)

	names := make(map[string]bool, len(listed.Tools))
	for _, tool := range listed.Tools {
		names[tool.Name] = true
	}

	for _, want := range []string{
		"run_mutmut",
		"show_results",
		"show_survivors",
		"generate_test_suggestion",
		"rerun_mutmut_on_survivor",
		"clean_mutmut_cache",
		"show_mutant",
		"prioritize_survivors",
	} {
		assert.True(t, names[want], "tool %q not registered", want)
	}

	cancel()

	select {
	case err := <-serveErr:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestServeTransport_CancellationIsCleanShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	server := newLocalServer()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ServeTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)

	clientCtx, clientCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer clientCancel()

	session, err := client.Connect(clientCtx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	cancel()

	select {
	case err := <-serveErr:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
