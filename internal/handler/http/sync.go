// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/YZcontent/yz-ad-club-backend/internal/app"
	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
	"github.com/YZcontent/yz-ad-club-backend/internal/metrics"
	"github.com/YZcontent/yz-ad-club-backend/internal/service"
	"github.com/YZcontent/yz-ad-club-backend/internal/utils"
	"github.com/YZcontent/yz-ad-club-backend/internal/validators"
	"github.com/YZcontent/yz-ad-club-backend/models"
)

// syncContent handles POST /api/yodeck-sync. Item failures still answer
// 200; only structural rejections and request-fatal errors do not.
func (h *Handler) syncContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Str("func", "*Handler.syncContent").Int64("limit", tooLarge.Limit).Msg("request body too large")
			h.rejectBatch()
			writeErrorMessage(w, app.MsgRequestBodyTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Str("func", "*Handler.syncContent").Msg("error reading request body")
		h.rejectBatch()
		writeErrorMessage(w, app.MsgInvalidContentFormat, http.StatusBadRequest)
		return
	}

	syncRequest, err := validators.ParseSyncRequest(data)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncContent").Msg("invalid sync request body")
		h.rejectBatch()
		writeError(w, fmt.Errorf("%w: %w", service.ErrValidation, err))
		return
	}

	response, err := h.services.SyncService.Sync(ctx, syncRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncContent").Str("business_id", syncRequest.BusinessID).Msg("sync request rejected")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// rejectBatch counts a request refused before it reached the sync service.
func (h *Handler) rejectBatch() {
	if h.services.Metrics != nil {
		h.services.Metrics.ObserveBatch(metrics.BatchRejected)
	}
}

// listSyncRuns handles GET /api/yodeck-sync/runs?businessId=&limit=.
func (h *Handler) listSyncRuns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.SyncRunFilter{BusinessID: r.URL.Query().Get("businessId")}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			log.Warn().Str("func", "*Handler.listSyncRuns").Str("limit", raw).Msg("invalid limit")
			writeError(w, ErrInvalidLimit)
			return
		}
		filter.Limit = limit
	}

	runs, err := h.services.SyncRunService.ListRuns(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listSyncRuns").Msg("error listing sync runs")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SyncRunsResponse{
		Success: true,
		Runs:    runs,
		Length:  len(runs),
	}, http.StatusOK)
}

func writeError(w http.ResponseWriter, err error) {
	writeErrorMessage(w, messageFromError(err), statusFromError(err))
}

func writeErrorMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: message}, status)
}
