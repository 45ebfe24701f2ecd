package service_test

import (
	"context"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
	"github.com/pkordes/pool-logbook/backend/internal/repo"
	"github.com/pkordes/pool-logbook/backend/internal/service"
)

// mockStore is a hand-written test double for repo.Store.
// Each method is a function field; set only the ones your test needs.
type mockStore struct {
	create    func(ctx context.Context, pool domain.Pool) (string, error)
	readAll   func(ctx context.Context) ([]domain.Pool, error)
	readOne   func(ctx context.Context, id string) (domain.Pool, bool, error)
	update    func(ctx context.Context, id string, patch domain.PoolPatch) (bool, error)
	delete    func(ctx context.Context, id string) (bool, error)
	deleteAll func(ctx context.Context) (int64, error)

	appendLog func(ctx context.Context, poolID string, log domain.PoolLog) (bool, error)
	listLogs  func(ctx context.Context, poolID string) ([]domain.PoolLog, error)
	getLog    func(ctx context.Context, poolID, logID string) (domain.PoolLog, bool, error)
	updateLog func(ctx context.Context, poolID, logID string, log domain.PoolLog) (bool, error)
	deleteLog func(ctx context.Context, poolID, logID string) (bool, error)
	clearLogs func(ctx context.Context, poolID string) (bool, error)
}

func (m *mockStore) Create(ctx context.Context, pool domain.Pool) (string, error) {
	return m.create(ctx, pool)
}
func (m *mockStore) ReadAll(ctx context.Context) ([]domain.Pool, error) {
	return m.readAll(ctx)
}
func (m *mockStore) ReadOne(ctx context.Context, id string) (domain.Pool, bool, error) {
	return m.readOne(ctx, id)
}
func (m *mockStore) Update(ctx context.Context, id string, patch domain.PoolPatch) (bool, error) {
	return m.update(ctx, id, patch)
}
func (m *mockStore) Delete(ctx context.Context, id string) (bool, error) {
	return m.delete(ctx, id)
}
func (m *mockStore) DeleteAll(ctx context.Context) (int64, error) {
	return m.deleteAll(ctx)
}
func (m *mockStore) AppendLog(ctx context.Context, poolID string, log domain.PoolLog) (bool, error) {
	return m.appendLog(ctx, poolID, log)
}
func (m *mockStore) ListLogs(ctx context.Context, poolID string) ([]domain.PoolLog, error) {
	return m.listLogs(ctx, poolID)
}
func (m *mockStore) GetLog(ctx context.Context, poolID, logID string) (domain.PoolLog, bool, error) {
	return m.getLog(ctx, poolID, logID)
}
func (m *mockStore) UpdateLog(ctx context.Context, poolID, logID string, log domain.PoolLog) (bool, error) {
	return m.updateLog(ctx, poolID, logID, log)
}
func (m *mockStore) DeleteLog(ctx context.Context, poolID, logID string) (bool, error) {
	return m.deleteLog(ctx, poolID, logID)
}
func (m *mockStore) ClearLogs(ctx context.Context, poolID string) (bool, error) {
	return m.clearLogs(ctx, poolID)
}

// compile-time check: mockStore must satisfy repo.Store.
var _ repo.Store = (*mockStore)(nil)

type mockInspector struct {
	ping            func(ctx context.Context) error
	serverInfo      func(ctx context.Context) (domain.ServerInfo, error)
	uptime          func(ctx context.Context) (float64, error)
	storageStats    func(ctx context.Context) (domain.StorageStats, error)
	connectionStats func(ctx context.Context) (domain.ConnectionStats, error)
}

func (m *mockInspector) Ping(ctx context.Context) error { return m.ping(ctx) }
func (m *mockInspector) ServerInfo(ctx context.Context) (domain.ServerInfo, error) {
	return m.serverInfo(ctx)
}
func (m *mockInspector) Uptime(ctx context.Context) (float64, error) { return m.uptime(ctx) }
func (m *mockInspector) StorageStats(ctx context.Context) (domain.StorageStats, error) {
	return m.storageStats(ctx)
}
func (m *mockInspector) ConnectionStats(ctx context.Context) (domain.ConnectionStats, error) {
	return m.connectionStats(ctx)
}

var _ repo.Inspector = (*mockInspector)(nil)

type mockArchiver struct {
	upload func(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

func (m *mockArchiver) Upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	return m.upload(ctx, key, body, contentType)
}

var _ service.Archiver = (*mockArchiver)(nil)

// ---- helpers ---------------------------------------------------------------

func validParams() domain.PoolParams {
	return domain.PoolParams{
		OwnerName: "Alice",
		Length:    10,
		Width:     5,
		Depth:     2,
		Type:      "chlorine",
	}
}

func storedPool(id string, logs ...domain.PoolLog) domain.Pool {
	if logs == nil {
		logs = []domain.PoolLog{}
	}
	return domain.Pool{
		ID:          id,
		OwnerName:   "Alice",
		Length:      10,
		Width:       5,
		Depth:       2,
		Type:        "chlorine",
		WaterVolume: 100,
		Logbook:     logs,
	}
}

// foundPool returns a readOne func that finds only id.
func foundPool(id string) func(context.Context, string) (domain.Pool, bool, error) {
	return func(_ context.Context, got string) (domain.Pool, bool, error) {
		if got != id {
			return domain.Pool{}, false, nil
		}
		return storedPool(id), true, nil
	}
}
