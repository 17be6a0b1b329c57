package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/YZcontent/yz-ad-club-backend/internal/config"
	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
	"github.com/YZcontent/yz-ad-club-backend/internal/mock"
	"github.com/YZcontent/yz-ad-club-backend/internal/service"
	"github.com/YZcontent/yz-ad-club-backend/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServices struct {
	sync    *mock.MockSyncService
	runs    *mock.MockSyncRunService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, ctrl *gomock.Controller, maxBody int64) (*Handler, testServices) {
	t.Helper()
	mocks := testServices{
		sync:    mock.NewMockSyncService(ctrl),
		runs:    mock.NewMockSyncRunService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		SyncService:    mocks.sync,
		SyncRunService: mocks.runs,
		AppInfoService: mocks.appInfo,
	}

	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics\n"))
	})

	return NewHandler(services, config.Server{MaxBodyBytes: maxBody}, metrics, logger.Nop()), mocks
}

func doRequest(t *testing.T, h http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
