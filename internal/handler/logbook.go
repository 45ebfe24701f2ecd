package handler

import (
	"fmt"
	"net/http"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
)

const msgLogNotFound = "Log not found."

// logRequest is the body of a logbook entry. Readings are pointers so a
// missing reading is rejected instead of being stored as zero.
type logRequest struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	PHLevel       *float64 `json:"pH_level"`
	ChlorineLevel *float64 `json:"chlorine_level"`
	Notes         string   `json:"notes"`
}

func (req logRequest) params() (domain.LogParams, error) {
	if req.PHLevel == nil {
		return domain.LogParams{}, fmt.Errorf("%w: pH_level is required", domain.ErrValidation)
	}
	if req.ChlorineLevel == nil {
		return domain.LogParams{}, fmt.Errorf("%w: chlorine_level is required", domain.ErrValidation)
	}
	return domain.LogParams{
		ID:            req.ID,
		Date:          req.Date,
		PHLevel:       *req.PHLevel,
		ChlorineLevel: *req.ChlorineLevel,
		Notes:         req.Notes,
	}, nil
}

type logResponse struct {
	Status     string               `json:"status"`
	Message    string               `json:"message,omitempty"`
	Log        domain.PoolLog       `json:"log"`
	Advisories domain.LogAdvisories `json:"advisories"`
}

type logsResponse struct {
	Status string           `json:"status"`
	PoolID string           `json:"pool_id"`
	Logs   []domain.PoolLog `json:"logs"`
}

// AddLog handles POST /pools/{poolId}/logs.
func (s *Server) AddLog(w http.ResponseWriter, r *http.Request) {
	poolID, ok := s.poolID(w, r)
	if !ok {
		return
	}
	params, ok := s.decodeLog(w, r)
	if !ok {
		return
	}

	log, err := s.logs.Add(r.Context(), poolID, params)
	if err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, logResponse{
		Status:     statusOK,
		Message:    "Maintenance logged successfully.",
		Log:        log,
		Advisories: log.Advisories(),
	})
}

// ListLogs handles GET /pools/{poolId}/logs.
func (s *Server) ListLogs(w http.ResponseWriter, r *http.Request) {
	poolID, ok := s.poolID(w, r)
	if !ok {
		return
	}
	logs, err := s.logs.List(r.Context(), poolID)
	if err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}
	writeJSON(w, http.StatusOK, logsResponse{Status: statusOK, PoolID: poolID, Logs: logs})
}

// ClearLogs handles DELETE /pools/{poolId}/logs.
func (s *Server) ClearLogs(w http.ResponseWriter, r *http.Request) {
	poolID, ok := s.poolID(w, r)
	if !ok {
		return
	}
	if err := s.logs.Clear(r.Context(), poolID); err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}
	writeJSON(w, http.StatusOK, messageBody("All logs deleted successfully."))
}

// GetLog handles GET /pools/{poolId}/logs/{logId}. The entry is returned with
// the chemistry advisories for its readings.
func (s *Server) GetLog(w http.ResponseWriter, r *http.Request) {
	poolID, logID, ok := s.logIDs(w, r)
	if !ok {
		return
	}
	log, err := s.logs.Get(r.Context(), poolID, logID)
	if err != nil {
		s.writeError(w, r, err, msgLogNotFound)
		return
	}
	writeJSON(w, http.StatusOK, logResponse{Status: statusOK, Log: log, Advisories: log.Advisories()})
}

// UpdateLog handles PUT /pools/{poolId}/logs/{logId}. The entry is replaced
// wholesale and keeps the id from the path.
func (s *Server) UpdateLog(w http.ResponseWriter, r *http.Request) {
	poolID, logID, ok := s.logIDs(w, r)
	if !ok {
		return
	}
	params, ok := s.decodeLog(w, r)
	if !ok {
		return
	}

	log, err := s.logs.Update(r.Context(), poolID, logID, params)
	if err != nil {
		s.writeError(w, r, err, msgLogNotFound)
		return
	}
	writeJSON(w, http.StatusOK, logResponse{
		Status:     statusOK,
		Message:    "Maintenance updated successfully.",
		Log:        log,
		Advisories: log.Advisories(),
	})
}

// DeleteLog handles DELETE /pools/{poolId}/logs/{logId}.
func (s *Server) DeleteLog(w http.ResponseWriter, r *http.Request) {
	poolID, logID, ok := s.logIDs(w, r)
	if !ok {
		return
	}
	if err := s.logs.Delete(r.Context(), poolID, logID); err != nil {
		s.writeError(w, r, err, msgLogNotFound)
		return
	}
	writeJSON(w, http.StatusOK, messageBody("Log deleted successfully."))
}

// logIDs binds both path ids. A logId that is not a UUID cannot name a
// stored entry and is answered with 404.
func (s *Server) logIDs(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	poolID, ok := s.poolID(w, r)
	if !ok {
		return "", "", false
	}
	logID, ok := logIDParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody(msgLogNotFound))
		return "", "", false
	}
	return poolID, logID, true
}

func (s *Server) decodeLog(w http.ResponseWriter, r *http.Request) (domain.LogParams, bool) {
	var req logRequest
	if code, err := decodeJSON(r, &req); err != nil {
		writeJSON(w, code, errorBody(err.Error()))
		return domain.LogParams{}, false
	}
	params, err := req.params()
	if err != nil {
		s.writeError(w, r, err, msgLogNotFound)
		return domain.LogParams{}, false
	}
	return params, true
}
