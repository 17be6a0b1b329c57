// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/YZcontent/yz-ad-club-backend/internal/metrics"
	"github.com/YZcontent/yz-ad-club-backend/internal/service"
	"github.com/YZcontent/yz-ad-club-backend/internal/validators"
	"github.com/YZcontent/yz-ad-club-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── POST /api/yodeck-sync ───────────────────────────────────────────────────

func TestSyncContent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl, 0)
	mocks.sync.EXPECT().Sync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req models.SyncRequest) (models.SyncResponse, error) {
			assert.Equal(t, "biz-1", req.BusinessID)
			assert.Equal(t, "Cafe", req.BusinessName)
			require.Len(t, req.Content, 1)
			assert.Equal(t, `"c1"`, string(req.Content[0].ID))
			return models.SyncResponse{
				Success:     true,
				BusinessID:  "biz-1",
				SyncedCount: 1,
				Items: []models.ItemResult{
					models.NewSuccessResult(req.Content[0].ID, models.MediaRecord{ID: models.Identifier(`"X"`), Name: "Menu"}),
				},
			}, nil
		})

	body := `{"businessId":"biz-1","businessName":"Cafe","content":[{"id":"c1","title":"Menu","content_type":"image","file_url":"https://cdn.test/m.png"}]}`
	rec := doRequest(t, h.Init(), http.MethodPost, "/api/yodeck-sync", []byte(body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"success":true,"businessId":"biz-1","syncedCount":1,"failedCount":0,"items":[{"contentId":"c1","status":"success","yodeckId":"X","name":"Menu"}]}`,
		rec.Body.String())
}

func TestSyncContent_StructuralRejections(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `not json`},
		{name: "json array", body: `[]`},
		{name: "missing content", body: `{"businessId":"biz"}`},
		{name: "null content", body: `{"businessId":"biz","content":null}`},
		{name: "content is object", body: `{"businessId":"biz","content":{"id":1}}`},
		{name: "content is string", body: `{"businessId":"biz","content":"[]"}`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no Sync expectation: the service must not be reached
			h, _ := newTestHandler(t, ctrl, 0)

			rec := doRequest(t, h.Init(), http.MethodPost, "/api/yodeck-sync", []byte(tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, models.ErrorResponse{Success: false, Message: "Invalid content format"}, decodeError(t, rec))
		})
	}
}

func TestSyncContent_ServiceErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "blank business id",
			err:         fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidBusinessID),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "businessId is required",
		},
		{
			name:        "missing credentials",
			err:         service.ErrConfiguration,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Yodeck API credentials are not configured",
		},
		{
			name:        "unexpected",
			err:         fmt.Errorf("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, mocks := newTestHandler(t, ctrl, 0)
			mocks.sync.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(models.SyncResponse{}, tt.err)

			rec := doRequest(t, h.Init(), http.MethodPost, "/api/yodeck-sync", []byte(`{"businessId":" ","content":[]}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, models.ErrorResponse{Success: false, Message: tt.wantMessage}, decodeError(t, rec))
		})
	}
}

func TestSyncContent_BodyTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl, 32)
	body := `{"businessId":"biz","content":[` + strings.Repeat(`{"id":1},`, 20) + `{"id":2}]}`

	rec := doRequest(t, h.Init(), http.MethodPost, "/api/yodeck-sync", []byte(body))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "request body too large", decodeError(t, rec).Message)
}

func TestSyncContent_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl, 0)
	mocks.sync.EXPECT().Sync(gomock.Any(), models.SyncRequest{BusinessID: "biz", Content: []models.ContentItem{}}).
		Return(models.SyncResponse{Success: true, BusinessID: "biz", Items: []models.ItemResult{}}, nil)

	rec := doRequest(t, h.Init(), http.MethodPost, "/api/yodeck-sync", []byte(`{"businessId":"biz","content":[]}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(0), resp["syncedCount"])
	assert.Equal(t, []any{}, resp["items"])
}

func TestSyncContent_StructuralRejectionCountsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorder, err := metrics.NewPrometheusRecorder(nil)
	require.NoError(t, err)

	h, _ := newTestHandler(t, ctrl, 0)
	h.services.Metrics = recorder

	rec := doRequest(t, h.Init(), http.MethodPost, "/api/yodeck-sync", []byte(`{"businessId":"biz"}`))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	scraped := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(scraped, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, scraped.Body.String(), `yodeck_sync_batches_total{outcome="rejected"} 1`)
}
