package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// statusBody is the smallest envelope: {"status": "..."} plus an optional message.
type statusBody struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// errorBody is written for every failed request.
func errorBody(message string) statusBody {
	return statusBody{Status: statusError, Message: message}
}

// messageBody is written for successful requests that return no data.
func messageBody(message string) statusBody {
	return statusBody{Status: statusOK, Message: message}
}

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error to its HTTP status and writes the envelope.
// notFound is the message used for domain.ErrNotFound, because the handler is
// the layer that knows what was being looked up.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(unwrapMessage(err, domain.ErrValidation)))
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody(notFound))
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorBody(unwrapMessage(err, domain.ErrConflict)))
	default:
		s.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal server error"))
	}
}

// unwrapMessage extracts the human-readable part that follows the sentinel.
// e.g. "service.PoolService.Update: validation error: length must be a positive number"
// becomes "length must be a positive number".
func unwrapMessage(err error, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	// The sentinel ends the chain: "...: log 1234: conflict".
	return msg
}

// decodeJSON decodes the request body into dst. A body over the size limit,
// an empty body and malformed JSON are all reported as errors suitable for a
// 400 (or 413) response.
func decodeJSON(r *http.Request, dst any) (int, error) {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return 0, nil
	}
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge, fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
	case errors.Is(err, io.EOF):
		return http.StatusBadRequest, errors.New("request body is required")
	default:
		return http.StatusBadRequest, fmt.Errorf("invalid JSON body: %v", err)
	}
}

// poolIDParam binds the {poolId} path segment. Pool ids are opaque: their
// shape depends on the store, so any non-empty string is accepted here.
func poolIDParam(r *http.Request) (string, error) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "poolId", chi.URLParam(r, "poolId"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", err
	}
	return id, nil
}

// logIDParam binds the {logId} path segment as a UUID. Every stored log id is
// a UUID, so a segment that fails to bind names no entry.
func logIDParam(r *http.Request) (string, bool) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "logId", chi.URLParam(r, "logId"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", false
	}
	return id.String(), true
}
