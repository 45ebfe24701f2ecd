package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pkordes/pool-logbook/backend/internal/mcpserver"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.
The server communicates via stdin/stdout.

CONFIGURATION:

  {
    "mcpServers": {
      "pool-logbook": { "command": "poolctl", "args": ["mcp"] }
    }
  }

AVAILABLE TOOLS:

  list_pools     List every pool
  get_pool       Get one pool with its logbook
  create_pool    Register a pool
  add_log        Record a maintenance visit
  list_logs      List a pool's logbook
  delete_log     Delete a logbook entry
  check_levels   Compare readings with the safe ranges`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			server := mcpserver.NewServer(a.pools, a.logs, version)
			if err := server.Serve(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}
