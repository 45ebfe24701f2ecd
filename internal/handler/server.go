// Package handler implements the HTTP handlers for the pool logbook API.
// All handlers are methods on Server, registered on a chi router by Routes.
// Methods are split into resource files (pool.go, logbook.go, etc.) but all
// share the same Server struct so they can access its dependencies.
package handler

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=mocks/mock_servicers.go -package=mocks github.com/pkordes/pool-logbook/backend/internal/handler PoolServicer,LogbookServicer

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
	"github.com/pkordes/pool-logbook/backend/internal/service"
	"github.com/pkordes/pool-logbook/backend/spec"
)

// PoolServicer defines the business operations the pool handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching a store or the service layer.
type PoolServicer interface {
	Create(ctx context.Context, params domain.PoolParams) (domain.Pool, error)
	List(ctx context.Context) ([]domain.Pool, error)
	Get(ctx context.Context, id string) (domain.Pool, error)
	Update(ctx context.Context, id string, patch domain.PoolPatch) (domain.Pool, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
	ScheduleMaintenance(ctx context.Context, id, date string) (domain.Pool, error)
	Volume(ctx context.Context, id string) (float64, error)
}

// LogbookServicer defines the logbook operations of one pool.
type LogbookServicer interface {
	Add(ctx context.Context, poolID string, params domain.LogParams) (domain.PoolLog, error)
	List(ctx context.Context, poolID string) ([]domain.PoolLog, error)
	Get(ctx context.Context, poolID, logID string) (domain.PoolLog, error)
	Update(ctx context.Context, poolID, logID string, params domain.LogParams) (domain.PoolLog, error)
	Delete(ctx context.Context, poolID, logID string) error
	Clear(ctx context.Context, poolID string) error
}

// StatsServicer computes aggregate counts.
type StatsServicer interface {
	Stats(ctx context.Context) (domain.Stats, error)
}

// ExportServicer produces the flat export and archives it.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
	Archive(ctx context.Context) (service.ArchiveResult, error)
}

// HealthServicer answers the API and store health checks.
type HealthServicer interface {
	APIStatus() service.Check
	APIUptime() service.UptimeReport
	StoreStatus(ctx context.Context) service.Check
	StoreUptime(ctx context.Context) service.UptimeReport
	StoreInfo(ctx context.Context) service.InfoReport
	StoreStorage(ctx context.Context) service.StorageReport
	StoreConnections(ctx context.Context) service.ConnectionsReport
	StoreFull(ctx context.Context) service.FullReport
}

// Services bundles the Server's dependencies. Nil services leave their
// routes unregistered, which keeps handler tests small.
type Services struct {
	Pools  PoolServicer
	Logs   LogbookServicer
	Stats  StatsServicer
	Export ExportServicer
	Health HealthServicer
	Logger *slog.Logger
}

// Server holds every handler dependency.
type Server struct {
	pools  PoolServicer
	logs   LogbookServicer
	stats  StatsServicer
	export ExportServicer
	health HealthServicer
	logger *slog.Logger
	report *reportRenderer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(s Services) *Server {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		pools:  s.Pools,
		logs:   s.Logs,
		stats:  s.Stats,
		export: s.Export,
		health: s.Health,
		logger: logger,
		report: newReportRenderer(),
	}
}

// Routes returns a chi router with every API route registered.
// Cross-cutting middleware (request id, logging, CORS) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealthz)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	if s.health != nil {
		r.Route("/health", func(r chi.Router) {
			r.Get("/api/status", s.GetAPIStatus)
			r.Get("/api/uptime", s.GetAPIUptime)
			r.Get("/store/status", s.GetStoreStatus)
			r.Get("/store/uptime", s.GetStoreUptime)
			r.Get("/store/info", s.GetStoreInfo)
			r.Get("/store/storage", s.GetStoreStorage)
			r.Get("/store/connections", s.GetStoreConnections)
			r.Get("/store/full", s.GetStoreFull)
		})
	}

	if s.pools != nil {
		r.Route("/pools", func(r chi.Router) {
			r.Post("/", s.CreatePool)
			r.Get("/", s.ListPools)
			r.Delete("/", s.DeleteAllPools)

			r.Route("/{poolId}", func(r chi.Router) {
				r.Get("/", s.GetPool)
				r.Put("/", s.UpdatePool)
				r.Patch("/", s.UpdatePool)
				r.Delete("/", s.DeletePool)
				r.Post("/schedule", s.SchedulePool)
				r.Get("/volume", s.GetPoolVolume)
				r.Get("/report", s.GetPoolReport)

				if s.logs != nil {
					r.Route("/logs", func(r chi.Router) {
						r.Post("/", s.AddLog)
						r.Get("/", s.ListLogs)
						r.Delete("/", s.ClearLogs)
						r.Get("/{logId}", s.GetLog)
						r.Put("/{logId}", s.UpdateLog)
						r.Delete("/{logId}", s.DeleteLog)
					})
				}
			})
		})
	}

	if s.stats != nil {
		r.Get("/stats/total_pools", s.GetTotalPools)
		r.Get("/stats/total_logs", s.GetTotalLogs)
	}

	if s.export != nil {
		r.Get("/export", s.GetExport)
		r.Post("/export/archive", s.PostExportArchive)
	}

	return r
}

// GetHealthz handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusBody{Status: statusOK})
}

// GetOpenAPI serves the embedded OpenAPI document.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
