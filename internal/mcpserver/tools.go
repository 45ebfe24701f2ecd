package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_pools",
		Description: "List every pool with its dimensions and logbook size",
	}, s.handleListPools)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_pool",
		Description: "Get one pool with its full maintenance logbook",
	}, s.handleGetPool)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_pool",
		Description: "Register a new pool; water volume defaults to length x width x depth",
	}, s.handleCreatePool)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_log",
		Description: "Record a maintenance visit (pH and free chlorine readings) for a pool",
	}, s.handleAddLog)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_logs",
		Description: "List the maintenance logbook of a pool in recorded order",
	}, s.handleListLogs)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_log",
		Description: "Delete one logbook entry by its id",
	}, s.handleDeleteLog)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "check_levels",
		Description: "Compare pH and chlorine readings with the safe ranges and suggest a treatment",
	}, s.handleCheckLevels)
}

// Tool input/output types

type poolSummary struct {
	ID          string  `json:"id"`
	OwnerName   string  `json:"owner_name"`
	Type        string  `json:"type"`
	WaterVolume float64 `json:"water_volume"`
	Logs        int     `json:"logs"`
}

type listPoolsInput struct{}

type listPoolsOutput struct {
	Pools []poolSummary `json:"pools"`
}

type poolIDInput struct {
	PoolID string `json:"pool_id" jsonschema:"the pool id"`
}

type poolOutput struct {
	Pool domain.Pool `json:"pool"`
}

type createPoolInput struct {
	OwnerName   string   `json:"owner_name" jsonschema:"name of the pool owner"`
	Length      float64  `json:"length" jsonschema:"length in meters"`
	Width       float64  `json:"width" jsonschema:"width in meters"`
	Depth       float64  `json:"depth" jsonschema:"average depth in meters"`
	Type        string   `json:"type" jsonschema:"pool type, e.g. chlorine or saltwater"`
	Notes       string   `json:"notes,omitempty" jsonschema:"free-form notes"`
	WaterVolume *float64 `json:"water_volume,omitempty" jsonschema:"override for the computed volume in cubic meters"`
}

type addLogInput struct {
	PoolID        string  `json:"pool_id" jsonschema:"the pool id"`
	Date          string  `json:"date" jsonschema:"visit date, e.g. 2024-01-31"`
	PHLevel       float64 `json:"pH_level" jsonschema:"measured pH"`
	ChlorineLevel float64 `json:"chlorine_level" jsonschema:"measured free chlorine in ppm"`
	Notes         string  `json:"notes,omitempty" jsonschema:"what was done during the visit"`
}

type logOutput struct {
	Log        domain.PoolLog       `json:"log"`
	Advisories domain.LogAdvisories `json:"advisories"`
	Message    string               `json:"message"`
}

type listLogsOutput struct {
	PoolID string           `json:"pool_id"`
	Logs   []domain.PoolLog `json:"logs"`
}

type deleteLogInput struct {
	PoolID string `json:"pool_id" jsonschema:"the pool id"`
	LogID  string `json:"log_id" jsonschema:"the logbook entry id"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type checkLevelsInput struct {
	PHLevel       float64 `json:"pH_level" jsonschema:"measured pH"`
	ChlorineLevel float64 `json:"chlorine_level" jsonschema:"measured free chlorine in ppm"`
}

// Tool handlers

func (s *Server) handleListPools(ctx context.Context, req *mcp.CallToolRequest, _ listPoolsInput) (*mcp.CallToolResult, listPoolsOutput, error) {
	pools, err := s.pools.List(ctx)
	if err != nil {
		return nil, listPoolsOutput{}, fmt.Errorf("failed to list pools: %w", err)
	}
	out := listPoolsOutput{Pools: make([]poolSummary, len(pools))}
	for i, p := range pools {
		out.Pools[i] = poolSummary{
			ID:          p.ID,
			OwnerName:   p.OwnerName,
			Type:        p.Type,
			WaterVolume: p.WaterVolume,
			Logs:        len(p.Logbook),
		}
	}
	return nil, out, nil
}

func (s *Server) handleGetPool(ctx context.Context, req *mcp.CallToolRequest, input poolIDInput) (*mcp.CallToolResult, poolOutput, error) {
	pool, err := s.pools.Get(ctx, input.PoolID)
	if err != nil {
		return nil, poolOutput{}, fmt.Errorf("pool %s: %w", input.PoolID, err)
	}
	return nil, poolOutput{Pool: pool}, nil
}

func (s *Server) handleCreatePool(ctx context.Context, req *mcp.CallToolRequest, input createPoolInput) (*mcp.CallToolResult, poolOutput, error) {
	pool, err := s.pools.Create(ctx, domain.PoolParams{
		OwnerName:   input.OwnerName,
		Length:      input.Length,
		Width:       input.Width,
		Depth:       input.Depth,
		Type:        input.Type,
		Notes:       input.Notes,
		WaterVolume: input.WaterVolume,
	})
	if err != nil {
		return nil, poolOutput{}, fmt.Errorf("failed to create pool: %w", err)
	}
	return nil, poolOutput{Pool: pool}, nil
}

func (s *Server) handleAddLog(ctx context.Context, req *mcp.CallToolRequest, input addLogInput) (*mcp.CallToolResult, logOutput, error) {
	log, err := s.logs.Add(ctx, input.PoolID, domain.LogParams{
		Date:          input.Date,
		PHLevel:       input.PHLevel,
		ChlorineLevel: input.ChlorineLevel,
		Notes:         input.Notes,
	})
	if err != nil {
		return nil, logOutput{}, fmt.Errorf("failed to add log: %w", err)
	}
	return nil, logOutput{
		Log:        log,
		Advisories: log.Advisories(),
		Message:    fmt.Sprintf("Logged visit on %s (ID: %s)", log.Date, log.ID),
	}, nil
}

func (s *Server) handleListLogs(ctx context.Context, req *mcp.CallToolRequest, input poolIDInput) (*mcp.CallToolResult, listLogsOutput, error) {
	logs, err := s.logs.List(ctx, input.PoolID)
	if err != nil {
		return nil, listLogsOutput{}, fmt.Errorf("pool %s: %w", input.PoolID, err)
	}
	return nil, listLogsOutput{PoolID: input.PoolID, Logs: logs}, nil
}

func (s *Server) handleDeleteLog(ctx context.Context, req *mcp.CallToolRequest, input deleteLogInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.logs.Delete(ctx, input.PoolID, input.LogID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete log %s: %w", input.LogID, err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted log: %s", input.LogID)}, nil
}

func (s *Server) handleCheckLevels(ctx context.Context, req *mcp.CallToolRequest, input checkLevelsInput) (*mcp.CallToolResult, domain.LogAdvisories, error) {
	return nil, domain.LogAdvisories{
		PH:       domain.CheckPH(input.PHLevel),
		Chlorine: domain.CheckChlorine(input.ChlorineLevel),
	}, nil
}
