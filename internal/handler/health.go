package handler

import (
	"net/http"

	"github.com/pkordes/pool-logbook/backend/internal/service"
)

// writeReport writes a health report with 200 when ok, 503 otherwise.
func writeReport(w http.ResponseWriter, ok bool, report any) {
	code := http.StatusOK
	if !ok {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, report)
}

// GetAPIStatus handles GET /health/api/status.
func (s *Server) GetAPIStatus(w http.ResponseWriter, r *http.Request) {
	c := s.health.APIStatus()
	writeReport(w, c.OK(), c)
}

// GetAPIUptime handles GET /health/api/uptime.
func (s *Server) GetAPIUptime(w http.ResponseWriter, r *http.Request) {
	u := s.health.APIUptime()
	writeReport(w, u.OK(), u)
}

// GetStoreStatus handles GET /health/store/status.
func (s *Server) GetStoreStatus(w http.ResponseWriter, r *http.Request) {
	c := s.health.StoreStatus(r.Context())
	writeReport(w, c.OK(), c)
}

// GetStoreUptime handles GET /health/store/uptime.
func (s *Server) GetStoreUptime(w http.ResponseWriter, r *http.Request) {
	u := s.health.StoreUptime(r.Context())
	writeReport(w, u.OK(), u)
}

// GetStoreInfo handles GET /health/store/info.
func (s *Server) GetStoreInfo(w http.ResponseWriter, r *http.Request) {
	info := s.health.StoreInfo(r.Context())
	writeReport(w, info.OK(), info)
}

// GetStoreStorage handles GET /health/store/storage.
func (s *Server) GetStoreStorage(w http.ResponseWriter, r *http.Request) {
	st := s.health.StoreStorage(r.Context())
	writeReport(w, st.OK(), st)
}

// GetStoreConnections handles GET /health/store/connections.
func (s *Server) GetStoreConnections(w http.ResponseWriter, r *http.Request) {
	c := s.health.StoreConnections(r.Context())
	writeReport(w, c.OK(), c)
}

// GetStoreFull handles GET /health/store/full.
func (s *Server) GetStoreFull(w http.ResponseWriter, r *http.Request) {
	full := s.health.StoreFull(r.Context())
	writeReport(w, full.OverallStatus == service.StatusOK, full)
}
