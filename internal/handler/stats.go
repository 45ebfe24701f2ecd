package handler

import "net/http"

// GetTotalPools handles GET /stats/total_pools.
func (s *Server) GetTotalPools(w http.ResponseWriter, r *http.Request) {
	stats, err := s.stats.Stats(r.Context())
	if err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Status     string `json:"status"`
		TotalPools int    `json:"total_pools"`
	}{statusOK, stats.TotalPools})
}

// GetTotalLogs handles GET /stats/total_logs.
func (s *Server) GetTotalLogs(w http.ResponseWriter, r *http.Request) {
	stats, err := s.stats.Stats(r.Context())
	if err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Status    string `json:"status"`
		TotalLogs int    `json:"total_logs"`
	}{statusOK, stats.TotalLogs})
}
