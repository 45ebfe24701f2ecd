package service

import (
	"context"
	"fmt"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
	"github.com/pkordes/pool-logbook/backend/internal/repo"
)

// StatsService computes aggregate counts over every stored pool.
type StatsService struct {
	repo repo.PoolRepo
}

// NewStatsService constructs a StatsService.
func NewStatsService(r repo.PoolRepo) *StatsService {
	return &StatsService{repo: r}
}

// Stats returns the pool count and the total number of logbook entries.
func (s *StatsService) Stats(ctx context.Context) (domain.Stats, error) {
	pools, err := s.repo.ReadAll(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("service.StatsService.Stats: %w", err)
	}
	stats := domain.Stats{TotalPools: len(pools)}
	for _, p := range pools {
		stats.TotalLogs += len(p.Logbook)
	}
	return stats, nil
}
