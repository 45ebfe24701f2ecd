package handler

import (
	"net/http"
	"time"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
	"github.com/pkordes/pool-logbook/backend/internal/service"
)

// GetExport handles GET /export.
//
// Query param format: "json" (default) or "csv".
// CSV responses set Content-Disposition so browsers download the file.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "csv" {
		writeJSON(w, http.StatusBadRequest, errorBody(`format must be "json" or "csv"`))
		return
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}

	if format == "csv" {
		filename := "pool-logbook-" + time.Now().UTC().Format("2006-01-02") + ".csv"
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.WriteHeader(http.StatusOK)
		if err := service.WriteCSV(w, rows); err != nil {
			s.logger.ErrorContext(r.Context(), "writing csv export", "error", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Status string             `json:"status"`
		Rows   []domain.ExportRow `json:"rows"`
	}{statusOK, rows})
}

// PostExportArchive handles POST /export/archive. It uploads a CSV snapshot
// to object storage and answers with the object key and location.
func (s *Server) PostExportArchive(w http.ResponseWriter, r *http.Request) {
	res, err := s.export.Archive(r.Context())
	if err != nil {
		s.writeError(w, r, err, "Export archiving is not configured.")
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Status string `json:"status"`
		service.ArchiveResult
	}{statusOK, res})
}
