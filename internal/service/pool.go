// Package service contains the business logic for the pool logbook API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No store queries live here; services depend on repo interfaces, not
// implementations, and turn absent results into domain.ErrNotFound.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
	"github.com/pkordes/pool-logbook/backend/internal/repo"
)

// PoolService implements business logic for whole-pool operations.
type PoolService struct {
	repo repo.PoolRepo
}

// NewPoolService constructs a PoolService backed by the provided PoolRepo.
func NewPoolService(r repo.PoolRepo) *PoolService {
	return &PoolService{repo: r}
}

// Create validates and persists a new pool and returns it with its id.
func (s *PoolService) Create(ctx context.Context, params domain.PoolParams) (domain.Pool, error) {
	pool, err := domain.NewPool(params)
	if err != nil {
		return domain.Pool{}, err
	}
	id, err := s.repo.Create(ctx, pool)
	if err != nil {
		return domain.Pool{}, fmt.Errorf("service.PoolService.Create: %w", err)
	}
	pool.ID = id
	return pool, nil
}

// List returns all pools. The result is never nil.
func (s *PoolService) List(ctx context.Context) ([]domain.Pool, error) {
	pools, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PoolService.List: %w", err)
	}
	if pools == nil {
		pools = []domain.Pool{}
	}
	return pools, nil
}

// Get returns a single pool or domain.ErrNotFound.
func (s *PoolService) Get(ctx context.Context, id string) (domain.Pool, error) {
	pool, ok, err := s.repo.ReadOne(ctx, id)
	if err != nil {
		return domain.Pool{}, fmt.Errorf("service.PoolService.Get: %w", err)
	}
	if !ok {
		return domain.Pool{}, fmt.Errorf("service.PoolService.Get: pool %s: %w", id, domain.ErrNotFound)
	}
	return pool, nil
}

// Update validates the patch, applies it, and returns the stored pool.
// A patch that changes nothing is not an error as long as the pool exists.
func (s *PoolService) Update(ctx context.Context, id string, patch domain.PoolPatch) (domain.Pool, error) {
	if err := patch.Validate(); err != nil {
		return domain.Pool{}, err
	}
	if _, err := s.repo.Update(ctx, id, patch); err != nil {
		return domain.Pool{}, fmt.Errorf("service.PoolService.Update: %w", err)
	}
	pool, err := s.Get(ctx, id)
	if err != nil {
		return domain.Pool{}, fmt.Errorf("service.PoolService.Update: %w", err)
	}
	return pool, nil
}

// Delete removes a pool and its logbook.
func (s *PoolService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("service.PoolService.Delete: %w", err)
	}
	if !deleted {
		return fmt.Errorf("service.PoolService.Delete: pool %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll removes every pool and returns the count removed. Callers must
// obtain explicit confirmation first.
func (s *PoolService) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.PoolService.DeleteAll: %w", err)
	}
	return n, nil
}

// ScheduleMaintenance sets next_maintenance on the stored pool.
func (s *PoolService) ScheduleMaintenance(ctx context.Context, id, date string) (domain.Pool, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return domain.Pool{}, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	pool, err := s.Update(ctx, id, domain.PoolPatch{NextMaintenance: &date})
	if err != nil {
		return domain.Pool{}, fmt.Errorf("service.PoolService.ScheduleMaintenance: %w", err)
	}
	return pool, nil
}

// Volume returns length * width * depth for the stored pool. The stored
// water_volume is left alone.
func (s *PoolService) Volume(ctx context.Context, id string) (float64, error) {
	pool, err := s.Get(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("service.PoolService.Volume: %w", err)
	}
	return pool.CalculateVolume(), nil
}
