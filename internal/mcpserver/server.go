// Package mcpserver exposes the pool logbook to MCP clients (AI assistants)
// over stdio. Tools call the same services as the HTTP API.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
)

// Pools is the subset of pool operations the tools use.
type Pools interface {
	Create(ctx context.Context, params domain.PoolParams) (domain.Pool, error)
	List(ctx context.Context) ([]domain.Pool, error)
	Get(ctx context.Context, id string) (domain.Pool, error)
}

// Logbook is the subset of logbook operations the tools use.
type Logbook interface {
	Add(ctx context.Context, poolID string, params domain.LogParams) (domain.PoolLog, error)
	List(ctx context.Context, poolID string) ([]domain.PoolLog, error)
	Delete(ctx context.Context, poolID, logID string) error
}

// Server wraps the MCP server with service access.
type Server struct {
	mcpServer *mcp.Server
	pools     Pools
	logs      Logbook
}

// NewServer creates an MCP server with every tool registered.
func NewServer(pools Pools, logs Logbook, version string) *Server {
	s := &Server{
		mcpServer: mcp.NewServer(&mcp.Implementation{Name: "pool-logbook", Version: version}, nil),
		pools:     pools,
		logs:      logs,
	}
	s.registerTools()
	return s
}

// Serve runs the server on stdin/stdout until ctx is done or the client
// disconnects.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// Connect attaches the server to an arbitrary transport, e.g. an in-memory
// pipe in tests.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.mcpServer.Connect(ctx, t, nil)
}
