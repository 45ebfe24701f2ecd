// Package repo contains all persistence logic for the pool logbook API.
// Every backend stores one self-contained document per pool with its logbook
// embedded as an ordered array. No business logic lives here; "no matching
// document" is reported as false or absent, and every other failure
// (connectivity, decoding) is returned as an error.
package repo

import (
	"context"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
)

// PoolRepo defines whole-document operations on pools.
// Ids are opaque strings in the backend's native form; an id with the wrong
// shape for the backend is treated as "no such pool", never as an error.
type PoolRepo interface {
	// Create inserts pool (its ID is ignored) and returns the assigned id.
	Create(ctx context.Context, pool domain.Pool) (string, error)

	// ReadAll returns every stored pool in the backend's iteration order.
	ReadAll(ctx context.Context) ([]domain.Pool, error)

	// ReadOne returns the pool with the given id; ok is false if none exists.
	ReadOne(ctx context.Context, id string) (pool domain.Pool, ok bool, err error)

	// Update merges the patch into the stored document and reports whether
	// anything changed. Unchanged values and unknown ids both yield false.
	Update(ctx context.Context, id string, patch domain.PoolPatch) (bool, error)

	// Delete removes the pool and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)

	// DeleteAll removes every pool and returns how many were removed.
	// There is no confirmation step; callers must guard it.
	DeleteAll(ctx context.Context) (int64, error)
}

// LogbookRepo defines operations on the logbook array embedded in one pool.
// Log ids are compared as canonical strings (see domain.CanonicalLogID).
type LogbookRepo interface {
	// AppendLog pushes log onto the end of the logbook. It reports false when
	// the pool does not exist or already holds an entry with the same id.
	AppendLog(ctx context.Context, poolID string, log domain.PoolLog) (bool, error)

	// ListLogs returns the logbook in stored order. A missing pool and an empty
	// logbook both yield an empty, non-nil slice.
	ListLogs(ctx context.Context, poolID string) ([]domain.PoolLog, error)

	// GetLog scans the logbook and returns the first entry with a matching id.
	GetLog(ctx context.Context, poolID, logID string) (log domain.PoolLog, ok bool, err error)

	// UpdateLog replaces the first entry whose id equals logID with log and
	// reports whether such an entry was found.
	UpdateLog(ctx context.Context, poolID, logID string, log domain.PoolLog) (bool, error)

	// DeleteLog removes every entry whose id equals logID and reports whether
	// anything was removed.
	DeleteLog(ctx context.Context, poolID, logID string) (bool, error)

	// ClearLogs empties the logbook. It reports false when the pool does not
	// exist or its logbook was already empty.
	ClearLogs(ctx context.Context, poolID string) (bool, error)
}

// Store is a complete pool document store.
type Store interface {
	PoolRepo
	LogbookRepo
}

// Inspector exposes read-only administrative information about the backend.
// These calls back the health endpoints and carry no domain logic.
type Inspector interface {
	Ping(ctx context.Context) error
	ServerInfo(ctx context.Context) (domain.ServerInfo, error)
	// Uptime returns how long the store server has been running, in seconds.
	Uptime(ctx context.Context) (float64, error)
	StorageStats(ctx context.Context) (domain.StorageStats, error)
	ConnectionStats(ctx context.Context) (domain.ConnectionStats, error)
}
