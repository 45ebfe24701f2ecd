package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
	"github.com/pkordes/pool-logbook/backend/internal/handler"
	"github.com/pkordes/pool-logbook/backend/testutil"
)

const (
	poolID = "665f1c2b9a1e4b0012345678"
	logID  = "0b7e5f0e-7a3c-4a51-9d55-7d4c4c7b6a01"
)

// newHTTPHandler wires a Server with the given services into its chi router.
// This mirrors how main.go wires it in production, minus the middleware.
func newHTTPHandler(svcs handler.Services) http.Handler {
	svcs.Logger = testutil.DiscardLogger()
	return handler.NewServer(svcs).Routes()
}

func poolFixture() domain.Pool {
	return domain.Pool{
		ID:          poolID,
		OwnerName:   "Alice",
		Length:      10,
		Width:       5,
		Depth:       2,
		Type:        "chlorine",
		WaterVolume: 100,
		Logbook:     []domain.PoolLog{logFixture()},
	}
}

func logFixture() domain.PoolLog {
	return domain.PoolLog{
		ID:            logID,
		Date:          "2024-01-01",
		PHLevel:       7.5,
		ChlorineLevel: 2.0,
		Notes:         "weekly check",
	}
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// serve sends one request through h and returns the recorder.
func serve(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the recorder body into a generic map.
func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}
