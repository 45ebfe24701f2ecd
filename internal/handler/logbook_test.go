package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
	"github.com/pkordes/pool-logbook/backend/internal/handler"
	"github.com/pkordes/pool-logbook/backend/internal/handler/mocks"
)

func newLogbookHandler(t *testing.T) (*mocks.MockLogbookServicer, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logs := mocks.NewMockLogbookServicer(ctrl)
	pools := mocks.NewMockPoolServicer(ctrl)
	return logs, newHTTPHandler(handler.Services{Pools: pools, Logs: logs})
}

func logsPath(parts ...string) string {
	return "/pools/" + poolID + "/logs" + strings.Join(append([]string{""}, parts...), "/")
}

// ---- POST /pools/{poolId}/logs ---------------------------------------------

func TestAddLog_201(t *testing.T) {
	logs, h := newLogbookHandler(t)
	fixture := logFixture()

	logs.EXPECT().
		Add(gomock.Any(), poolID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p domain.LogParams) (domain.PoolLog, error) {
			assert.Equal(t, "2024-01-01", p.Date)
			assert.Equal(t, 7.5, p.PHLevel)
			assert.Equal(t, 2.0, p.ChlorineLevel)
			assert.Empty(t, p.ID)
			return fixture, nil
		})

	rec := serve(h, http.MethodPost, logsPath(), jsonBody(t, map[string]any{
		"date":           "2024-01-01",
		"pH_level":       7.5,
		"chlorine_level": 2.0,
	}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "Maintenance logged successfully.", resp["message"])
	assert.Equal(t, logID, resp["log"].(map[string]any)["id"])
	assert.Equal(t, "ok", resp["advisories"].(map[string]any)["pH"].(map[string]any)["level"])
}

func TestAddLog_422_MissingReading(t *testing.T) {
	_, h := newLogbookHandler(t)

	rec := serve(h, http.MethodPost, logsPath(), jsonBody(t, map[string]any{
		"date":     "2024-01-01",
		"pH_level": 7.5,
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "chlorine_level is required", decode(t, rec)["message"])
}

func TestAddLog_404_UnknownPool(t *testing.T) {
	logs, h := newLogbookHandler(t)
	logs.EXPECT().Add(gomock.Any(), poolID, gomock.Any()).Return(domain.PoolLog{}, domain.ErrNotFound)

	rec := serve(h, http.MethodPost, logsPath(), jsonBody(t, map[string]any{
		"date":           "2024-01-01",
		"pH_level":       7.5,
		"chlorine_level": 2.0,
	}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Pool not found.", decode(t, rec)["message"])
}

func TestAddLog_409_DuplicateID(t *testing.T) {
	logs, h := newLogbookHandler(t)
	logs.EXPECT().
		Add(gomock.Any(), poolID, gomock.Any()).
		Return(domain.PoolLog{}, fmt.Errorf("service.LogbookService.Add: log %s: %w", logID, domain.ErrConflict))

	rec := serve(h, http.MethodPost, logsPath(), jsonBody(t, map[string]any{
		"id":             logID,
		"date":           "2024-01-01",
		"pH_level":       7.5,
		"chlorine_level": 2.0,
	}))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// ---- GET / DELETE /pools/{poolId}/logs -------------------------------------

func TestListLogs_200(t *testing.T) {
	logs, h := newLogbookHandler(t)
	logs.EXPECT().List(gomock.Any(), poolID).Return([]domain.PoolLog{logFixture()}, nil)

	rec := serve(h, http.MethodGet, logsPath(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, poolID, resp["pool_id"])
	assert.Len(t, resp["logs"], 1)
}

func TestListLogs_404(t *testing.T) {
	logs, h := newLogbookHandler(t)
	logs.EXPECT().List(gomock.Any(), poolID).Return(nil, domain.ErrNotFound)

	rec := serve(h, http.MethodGet, logsPath(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClearLogs_200(t *testing.T) {
	logs, h := newLogbookHandler(t)
	logs.EXPECT().Clear(gomock.Any(), poolID).Return(nil)

	rec := serve(h, http.MethodDelete, logsPath(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "All logs deleted successfully.", decode(t, rec)["message"])
}

// ---- /pools/{poolId}/logs/{logId} ------------------------------------------

func TestGetLog_200_WithAdvisories(t *testing.T) {
	logs, h := newLogbookHandler(t)
	low := logFixture()
	low.PHLevel = 6.8
	logs.EXPECT().Get(gomock.Any(), poolID, logID).Return(low, nil)

	rec := serve(h, http.MethodGet, logsPath(logID), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	adv := decode(t, rec)["advisories"].(map[string]any)
	assert.Equal(t, "low", adv["pH"].(map[string]any)["level"])
	assert.Equal(t, "ok", adv["chlorine"].(map[string]any)["level"])
}

func TestGetLog_CanonicalizesID(t *testing.T) {
	logs, h := newLogbookHandler(t)
	logs.EXPECT().Get(gomock.Any(), poolID, logID).Return(logFixture(), nil)

	rec := serve(h, http.MethodGet, logsPath(strings.ToUpper(logID)), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetLog_404_NotUUID(t *testing.T) {
	_, h := newLogbookHandler(t)

	rec := serve(h, http.MethodGet, logsPath("not-a-uuid"), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Log not found.", decode(t, rec)["message"])
}

func TestGetLog_404(t *testing.T) {
	logs, h := newLogbookHandler(t)
	logs.EXPECT().Get(gomock.Any(), poolID, logID).Return(domain.PoolLog{}, domain.ErrNotFound)

	rec := serve(h, http.MethodGet, logsPath(logID), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Log not found.", decode(t, rec)["message"])
}

func TestUpdateLog_200(t *testing.T) {
	logs, h := newLogbookHandler(t)
	updated := logFixture()
	updated.Notes = "shocked"

	logs.EXPECT().
		Update(gomock.Any(), poolID, logID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, p domain.LogParams) (domain.PoolLog, error) {
			assert.Equal(t, "shocked", p.Notes)
			return updated, nil
		})

	rec := serve(h, http.MethodPut, logsPath(logID), jsonBody(t, map[string]any{
		"date":           "2024-01-01",
		"pH_level":       7.5,
		"chlorine_level": 2.0,
		"notes":          "shocked",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "Maintenance updated successfully.", resp["message"])
	assert.Equal(t, "shocked", resp["log"].(map[string]any)["notes"])
}

func TestUpdateLog_422(t *testing.T) {
	logs, h := newLogbookHandler(t)
	logs.EXPECT().
		Update(gomock.Any(), poolID, logID, gomock.Any()).
		Return(domain.PoolLog{}, fmt.Errorf("%w: date is required", domain.ErrValidation))

	rec := serve(h, http.MethodPut, logsPath(logID), jsonBody(t, map[string]any{
		"pH_level":       7.5,
		"chlorine_level": 2.0,
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "date is required", decode(t, rec)["message"])
}

func TestDeleteLog_200(t *testing.T) {
	logs, h := newLogbookHandler(t)
	logs.EXPECT().Delete(gomock.Any(), poolID, logID).Return(nil)

	rec := serve(h, http.MethodDelete, logsPath(logID), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Log deleted successfully.", decode(t, rec)["message"])
}

func TestDeleteLog_404(t *testing.T) {
	logs, h := newLogbookHandler(t)
	logs.EXPECT().Delete(gomock.Any(), poolID, logID).Return(domain.ErrNotFound)

	rec := serve(h, http.MethodDelete, logsPath(logID), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
