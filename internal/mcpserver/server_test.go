package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
	"github.com/pkordes/pool-logbook/backend/internal/repo"
	"github.com/pkordes/pool-logbook/backend/internal/service"
	"github.com/pkordes/pool-logbook/backend/testutil"
)

// newTestServer wires the tools to real services over an in-memory Badger store.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	store := repo.NewBadgerStore(testutil.NewBadgerDB(t))
	return NewServer(service.NewPoolService(store), service.NewLogbookService(store, store), "test")
}

func createPool(t *testing.T, s *Server) domain.Pool {
	t.Helper()
	_, out, err := s.handleCreatePool(context.Background(), &mcp.CallToolRequest{}, createPoolInput{
		OwnerName: "Alice",
		Length:    10,
		Width:     5,
		Depth:     2,
		Type:      "chlorine",
	})
	require.NoError(t, err)
	return out.Pool
}

func TestHandleCreatePool(t *testing.T) {
	s := newTestServer(t)

	pool := createPool(t, s)

	assert.NotEmpty(t, pool.ID)
	assert.Equal(t, 100.0, pool.WaterVolume)
	assert.Empty(t, pool.Logbook)
}

func TestHandleCreatePool_Invalid(t *testing.T) {
	s := newTestServer(t)

	_, _, err := s.handleCreatePool(context.Background(), &mcp.CallToolRequest{}, createPoolInput{
		OwnerName: "Alice",
		Length:    -1,
		Width:     5,
		Depth:     2,
		Type:      "chlorine",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestHandleListPools(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, out, err := s.handleListPools(ctx, &mcp.CallToolRequest{}, listPoolsInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Pools)

	pool := createPool(t, s)
	_, _, err = s.handleAddLog(ctx, &mcp.CallToolRequest{}, addLogInput{
		PoolID: pool.ID, Date: "2024-01-01", PHLevel: 7.5, ChlorineLevel: 2,
	})
	require.NoError(t, err)

	_, out, err = s.handleListPools(ctx, &mcp.CallToolRequest{}, listPoolsInput{})
	require.NoError(t, err)
	require.Len(t, out.Pools, 1)
	assert.Equal(t, pool.ID, out.Pools[0].ID)
	assert.Equal(t, 1, out.Pools[0].Logs)
}

func TestHandleLogLifecycle(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	pool := createPool(t, s)

	_, added, err := s.handleAddLog(ctx, &mcp.CallToolRequest{}, addLogInput{
		PoolID: pool.ID, Date: "2024-01-01", PHLevel: 8.1, ChlorineLevel: 0.5, Notes: "cloudy",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LevelHigh, added.Advisories.PH.Level)
	assert.Equal(t, domain.LevelLow, added.Advisories.Chlorine.Level)
	assert.Contains(t, added.Message, added.Log.ID)

	_, listed, err := s.handleListLogs(ctx, &mcp.CallToolRequest{}, poolIDInput{PoolID: pool.ID})
	require.NoError(t, err)
	require.Len(t, listed.Logs, 1)
	assert.Equal(t, "cloudy", listed.Logs[0].Notes)

	_, _, err = s.handleDeleteLog(ctx, &mcp.CallToolRequest{}, deleteLogInput{PoolID: pool.ID, LogID: added.Log.ID})
	require.NoError(t, err)

	_, got, err := s.handleGetPool(ctx, &mcp.CallToolRequest{}, poolIDInput{PoolID: pool.ID})
	require.NoError(t, err)
	assert.Empty(t, got.Pool.Logbook)

	_, _, err = s.handleDeleteLog(ctx, &mcp.CallToolRequest{}, deleteLogInput{PoolID: pool.ID, LogID: added.Log.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHandleGetPool_NotFound(t *testing.T) {
	s := newTestServer(t)

	_, _, err := s.handleGetPool(context.Background(), &mcp.CallToolRequest{}, poolIDInput{PoolID: "missing"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHandleCheckLevels(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleCheckLevels(context.Background(), &mcp.CallToolRequest{}, checkLevelsInput{PHLevel: 7.0, ChlorineLevel: 3.5})

	require.NoError(t, err)
	assert.Equal(t, domain.LevelLow, out.PH.Level)
	assert.Equal(t, domain.LevelHigh, out.Chlorine.Level)
}

// TestClientSession drives the server through a real MCP client over an
// in-memory transport.
func TestClientSession(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ss, err := s.Connect(ctx, serverTransport)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })

	tools, err := cs.ListTools(ctx, nil)
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"list_pools", "get_pool", "create_pool", "add_log", "list_logs", "delete_log", "check_levels",
	}, names)

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "check_levels",
		Arguments: map[string]any{"pH_level": 7.4, "chlorine_level": 2.0},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	require.NotEmpty(t, res.Content)

	res, err = cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_pool",
		Arguments: map[string]any{"pool_id": "missing"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
