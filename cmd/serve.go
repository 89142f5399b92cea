package cmd

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"mutman.dev/pkg/mutman/internal/domain"
	"mutman.dev/pkg/mutman/internal/server"
)

// serveCmd represents the serve command.
var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the operations as MCP tools over stdio",
		Long: `Expose every mutation-testing operation as an MCP tool on stdin/stdout
so automation clients can drive mutation testing sessions remotely.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			orch, ok := orchestrator.(*domain.Orchestrator)
			if !ok {
				orch = domain.NewOrchestrator(envResolver, processRunner, cacheAdapter, domain.Config{
					RunTimeout:   parseTimeout(runTimeoutKey, defaultRunTimeout),
					QueryTimeout: parseTimeout(queryTimeoutKey, defaultQueryTimeout),
				})
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			slog.Info("serving MCP on stdio")

			return server.New(orch).Serve(ctx)
		},
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
