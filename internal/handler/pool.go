package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
)

const msgPoolNotFound = "Pool not found."

// createPoolRequest is the body of POST /pools. Dimensions are pointers so a
// missing field is reported as required rather than as zero.
type createPoolRequest struct {
	OwnerName       string       `json:"owner_name"`
	Length          *float64     `json:"length"`
	Width           *float64     `json:"width"`
	Depth           *float64     `json:"depth"`
	Type            string       `json:"type"`
	Notes           string       `json:"notes"`
	WaterVolume     *float64     `json:"water_volume"`
	NextMaintenance string       `json:"next_maintenance"`
	Logbook         []logRequest `json:"logbook"`
}

func (req createPoolRequest) params() (domain.PoolParams, error) {
	for _, f := range []struct {
		name  string
		value *float64
	}{
		{domain.FieldLength, req.Length},
		{domain.FieldWidth, req.Width},
		{domain.FieldDepth, req.Depth},
	} {
		if f.value == nil {
			return domain.PoolParams{}, fmt.Errorf("%w: %s is required", domain.ErrValidation, f.name)
		}
	}
	p := domain.PoolParams{
		OwnerName:       req.OwnerName,
		Length:          *req.Length,
		Width:           *req.Width,
		Depth:           *req.Depth,
		Type:            req.Type,
		Notes:           req.Notes,
		WaterVolume:     req.WaterVolume,
		NextMaintenance: req.NextMaintenance,
	}
	for _, l := range req.Logbook {
		lp, err := l.params()
		if err != nil {
			return domain.PoolParams{}, err
		}
		p.Logbook = append(p.Logbook, lp)
	}
	return p, nil
}

type createPoolResponse struct {
	Status  string      `json:"status"`
	ID      string      `json:"id"`
	Message string      `json:"message"`
	Pool    domain.Pool `json:"pool"`
}

type poolResponse struct {
	Status string      `json:"status"`
	Pool   domain.Pool `json:"pool"`
}

type poolsResponse struct {
	Status string        `json:"status"`
	Pools  []domain.Pool `json:"pools"`
}

type volumeResponse struct {
	Status string  `json:"status"`
	PoolID string  `json:"pool_id"`
	Volume float64 `json:"volume"`
}

type scheduleRequest struct {
	Date string `json:"date"`
}

// CreatePool handles POST /pools.
func (s *Server) CreatePool(w http.ResponseWriter, r *http.Request) {
	var req createPoolRequest
	if code, err := decodeJSON(r, &req); err != nil {
		writeJSON(w, code, errorBody(err.Error()))
		return
	}
	params, err := req.params()
	if err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}

	pool, err := s.pools.Create(r.Context(), params)
	if err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, createPoolResponse{
		Status:  statusOK,
		ID:      pool.ID,
		Message: "Pool created with ID: " + pool.ID,
		Pool:    pool,
	})
}

// ListPools handles GET /pools.
func (s *Server) ListPools(w http.ResponseWriter, r *http.Request) {
	pools, err := s.pools.List(r.Context())
	if err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}
	writeJSON(w, http.StatusOK, poolsResponse{Status: statusOK, Pools: pools})
}

// DeleteAllPools handles DELETE /pools. It requires ?confirm=true because it
// removes every pool and logbook irreversibly.
func (s *Server) DeleteAllPools(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		writeJSON(w, http.StatusBadRequest, errorBody("deleting all pools requires ?confirm=true"))
		return
	}
	n, err := s.pools.DeleteAll(r.Context())
	if err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}
	writeJSON(w, http.StatusOK, messageBody(fmt.Sprintf("Deleted %d pools successfully.", n)))
}

// GetPool handles GET /pools/{poolId}.
func (s *Server) GetPool(w http.ResponseWriter, r *http.Request) {
	id, ok := s.poolID(w, r)
	if !ok {
		return
	}
	pool, err := s.pools.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}
	writeJSON(w, http.StatusOK, poolResponse{Status: statusOK, Pool: pool})
}

// UpdatePool handles PUT and PATCH /pools/{poolId}. Both are partial: only
// the fields present in the body change.
func (s *Server) UpdatePool(w http.ResponseWriter, r *http.Request) {
	id, ok := s.poolID(w, r)
	if !ok {
		return
	}
	var fields map[string]json.RawMessage
	if code, err := decodeJSON(r, &fields); err != nil {
		writeJSON(w, code, errorBody(err.Error()))
		return
	}
	patch, err := domain.ParsePoolPatch(fields)
	if err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}

	pool, err := s.pools.Update(r.Context(), id, patch)
	if err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		statusBody
		Pool domain.Pool `json:"pool"`
	}{messageBody("Pool updated successfully."), pool})
}

// DeletePool handles DELETE /pools/{poolId}.
func (s *Server) DeletePool(w http.ResponseWriter, r *http.Request) {
	id, ok := s.poolID(w, r)
	if !ok {
		return
	}
	if err := s.pools.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}
	writeJSON(w, http.StatusOK, messageBody("Pool deleted successfully."))
}

// SchedulePool handles POST /pools/{poolId}/schedule.
func (s *Server) SchedulePool(w http.ResponseWriter, r *http.Request) {
	id, ok := s.poolID(w, r)
	if !ok {
		return
	}
	var req scheduleRequest
	if code, err := decodeJSON(r, &req); err != nil {
		writeJSON(w, code, errorBody(err.Error()))
		return
	}
	pool, err := s.pools.ScheduleMaintenance(r.Context(), id, req.Date)
	if err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}
	writeJSON(w, http.StatusOK, poolResponse{Status: statusOK, Pool: pool})
}

// GetPoolVolume handles GET /pools/{poolId}/volume. The volume is computed
// from the dimensions on every call; the stored water_volume is not consulted.
func (s *Server) GetPoolVolume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.poolID(w, r)
	if !ok {
		return
	}
	volume, err := s.pools.Volume(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}
	writeJSON(w, http.StatusOK, volumeResponse{Status: statusOK, PoolID: id, Volume: volume})
}

// poolID binds {poolId} and writes a 400 on failure.
func (s *Server) poolID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := poolIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return "", false
	}
	return id, true
}
