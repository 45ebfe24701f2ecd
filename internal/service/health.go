package service

import (
	"context"
	"time"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
	"github.com/pkordes/pool-logbook/backend/internal/repo"
)

// Health report statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Check is a bare status/message pair.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// OK reports whether the check succeeded.
func (c Check) OK() bool { return c.Status == StatusOK }

// UptimeReport carries an uptime in seconds.
type UptimeReport struct {
	Check
	UptimeSeconds *float64 `json:"uptime_seconds,omitempty"`
}

// InfoReport carries the store server's build information.
type InfoReport struct {
	Check
	*domain.ServerInfo
}

// StorageReport carries the storage engine and memory figures.
type StorageReport struct {
	Check
	*domain.StorageStats
}

// ConnectionsReport carries the store connection counts.
type ConnectionsReport struct {
	Check
	Connections *domain.ConnectionStats `json:"connections,omitempty"`
}

// FullReport combines every store check. OverallStatus mirrors Health.
type FullReport struct {
	OverallStatus   string            `json:"overall_status"`
	Health          Check             `json:"health"`
	Uptime          UptimeReport      `json:"uptime"`
	StorageStats    StorageReport     `json:"storage_stats"`
	ConnectionStats ConnectionsReport `json:"connection_stats"`
}

// HealthService answers API and store health queries. Store failures are
// reported inside the returned report and never returned as errors.
type HealthService struct {
	store   repo.Inspector
	started time.Time
	now     func() time.Time
}

// NewHealthService constructs a HealthService. started is the process start time.
func NewHealthService(store repo.Inspector, started time.Time) *HealthService {
	return &HealthService{store: store, started: started, now: time.Now}
}

// APIStatus always succeeds while the process is serving.
func (s *HealthService) APIStatus() Check {
	return Check{Status: StatusOK, Message: "API server is healthy."}
}

// APIUptime returns the seconds since the process started.
func (s *HealthService) APIUptime() UptimeReport {
	secs := s.now().Sub(s.started).Seconds()
	return UptimeReport{Check: Check{Status: StatusOK}, UptimeSeconds: &secs}
}

// StoreStatus pings the store.
func (s *HealthService) StoreStatus(ctx context.Context) Check {
	if err := s.store.Ping(ctx); err != nil {
		return failed("Error connecting to the store: ", err)
	}
	return Check{Status: StatusOK, Message: "Store server is healthy."}
}

// StoreUptime returns how long the store server has been running.
func (s *HealthService) StoreUptime(ctx context.Context) UptimeReport {
	secs, err := s.store.Uptime(ctx)
	if err != nil {
		return UptimeReport{Check: failed("Failed to fetch uptime: ", err)}
	}
	return UptimeReport{Check: Check{Status: StatusOK}, UptimeSeconds: &secs}
}

// StoreInfo returns the store server's version and build details.
func (s *HealthService) StoreInfo(ctx context.Context) InfoReport {
	info, err := s.store.ServerInfo(ctx)
	if err != nil {
		return InfoReport{Check: failed("Failed to fetch server info: ", err)}
	}
	return InfoReport{Check: Check{Status: StatusOK}, ServerInfo: &info}
}

// StoreStorage returns the storage engine and memory usage.
func (s *HealthService) StoreStorage(ctx context.Context) StorageReport {
	stats, err := s.store.StorageStats(ctx)
	if err != nil {
		return StorageReport{Check: failed("Failed to fetch storage stats: ", err)}
	}
	return StorageReport{Check: Check{Status: StatusOK}, StorageStats: &stats}
}

// StoreConnections returns the connection counts.
func (s *HealthService) StoreConnections(ctx context.Context) ConnectionsReport {
	stats, err := s.store.ConnectionStats(ctx)
	if err != nil {
		return ConnectionsReport{Check: failed("Failed to fetch connection stats: ", err)}
	}
	return ConnectionsReport{Check: Check{Status: StatusOK}, Connections: &stats}
}

// StoreFull runs every store check.
func (s *HealthService) StoreFull(ctx context.Context) FullReport {
	health := s.StoreStatus(ctx)
	return FullReport{
		OverallStatus:   health.Status,
		Health:          health,
		Uptime:          s.StoreUptime(ctx),
		StorageStats:    s.StoreStorage(ctx),
		ConnectionStats: s.StoreConnections(ctx),
	}
}

func failed(prefix string, err error) Check {
	return Check{Status: StatusError, Message: prefix + err.Error()}
}
