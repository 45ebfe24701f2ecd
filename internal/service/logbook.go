package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
	"github.com/pkordes/pool-logbook/backend/internal/repo"
)

// LogbookService implements business logic for the logbook of one pool.
// Every change is a single atomic store operation; the service never reads,
// mutates and writes back a whole pool.
type LogbookService struct {
	pools repo.PoolRepo
	logs  repo.LogbookRepo
}

// NewLogbookService constructs a LogbookService. Both repos are usually the
// same repo.Store.
func NewLogbookService(pools repo.PoolRepo, logs repo.LogbookRepo) *LogbookService {
	return &LogbookService{pools: pools, logs: logs}
}

// Add builds a log entry (generating its id when absent) and appends it.
// It fails with ErrNotFound for an unknown pool and ErrConflict when the pool
// already has an entry with the same id.
func (s *LogbookService) Add(ctx context.Context, poolID string, params domain.LogParams) (domain.PoolLog, error) {
	log, err := domain.NewPoolLog(params)
	if err != nil {
		return domain.PoolLog{}, err
	}
	ok, err := s.logs.AppendLog(ctx, poolID, log)
	if err != nil {
		return domain.PoolLog{}, fmt.Errorf("service.LogbookService.Add: %w", err)
	}
	if ok {
		return log, nil
	}
	if err := s.requirePool(ctx, poolID); err != nil {
		return domain.PoolLog{}, fmt.Errorf("service.LogbookService.Add: %w", err)
	}
	return domain.PoolLog{}, fmt.Errorf("service.LogbookService.Add: log %s: %w", log.ID, domain.ErrConflict)
}

// List returns the logbook in stored order. Unlike the store operation it
// distinguishes an unknown pool (ErrNotFound) from an empty logbook.
func (s *LogbookService) List(ctx context.Context, poolID string) ([]domain.PoolLog, error) {
	if err := s.requirePool(ctx, poolID); err != nil {
		return nil, fmt.Errorf("service.LogbookService.List: %w", err)
	}
	logs, err := s.logs.ListLogs(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("service.LogbookService.List: %w", err)
	}
	if logs == nil {
		logs = []domain.PoolLog{}
	}
	return logs, nil
}

// Get returns one entry or ErrNotFound.
func (s *LogbookService) Get(ctx context.Context, poolID, logID string) (domain.PoolLog, error) {
	logID = domain.CanonicalLogID(logID)
	log, ok, err := s.logs.GetLog(ctx, poolID, logID)
	if err != nil {
		return domain.PoolLog{}, fmt.Errorf("service.LogbookService.Get: %w", err)
	}
	if !ok {
		return domain.PoolLog{}, fmt.Errorf("service.LogbookService.Get: log %s: %w", logID, domain.ErrNotFound)
	}
	return log, nil
}

// Update replaces an entry wholesale. The stored id is always logID; an id in
// params is ignored.
func (s *LogbookService) Update(ctx context.Context, poolID, logID string, params domain.LogParams) (domain.PoolLog, error) {
	logID = domain.CanonicalLogID(logID)
	if _, err := uuid.Parse(logID); err != nil {
		return domain.PoolLog{}, fmt.Errorf("service.LogbookService.Update: log %s: %w", logID, domain.ErrNotFound)
	}
	params.ID = logID
	log, err := domain.NewPoolLog(params)
	if err != nil {
		return domain.PoolLog{}, err
	}
	ok, err := s.logs.UpdateLog(ctx, poolID, logID, log)
	if err != nil {
		return domain.PoolLog{}, fmt.Errorf("service.LogbookService.Update: %w", err)
	}
	if !ok {
		return domain.PoolLog{}, fmt.Errorf("service.LogbookService.Update: log %s: %w", logID, domain.ErrNotFound)
	}
	return log, nil
}

// Delete removes the entry with logID.
func (s *LogbookService) Delete(ctx context.Context, poolID, logID string) error {
	logID = domain.CanonicalLogID(logID)
	ok, err := s.logs.DeleteLog(ctx, poolID, logID)
	if err != nil {
		return fmt.Errorf("service.LogbookService.Delete: %w", err)
	}
	if !ok {
		return fmt.Errorf("service.LogbookService.Delete: log %s: %w", logID, domain.ErrNotFound)
	}
	return nil
}

// Clear empties the logbook. Clearing an already empty logbook succeeds.
func (s *LogbookService) Clear(ctx context.Context, poolID string) error {
	ok, err := s.logs.ClearLogs(ctx, poolID)
	if err != nil {
		return fmt.Errorf("service.LogbookService.Clear: %w", err)
	}
	if ok {
		return nil
	}
	if err := s.requirePool(ctx, poolID); err != nil {
		return fmt.Errorf("service.LogbookService.Clear: %w", err)
	}
	return nil
}

func (s *LogbookService) requirePool(ctx context.Context, poolID string) error {
	_, ok, err := s.pools.ReadOne(ctx, poolID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("pool %s: %w", poolID, domain.ErrNotFound)
	}
	return nil
}
