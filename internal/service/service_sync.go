// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/YZcontent/yz-ad-club-backend/internal/config"
	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
	"github.com/YZcontent/yz-ad-club-backend/internal/metrics"
	"github.com/YZcontent/yz-ad-club-backend/internal/store"
	"github.com/YZcontent/yz-ad-club-backend/internal/utils"
	"github.com/YZcontent/yz-ad-club-backend/models"
)

// syncService is the concrete implementation of SyncService.
//
// It checks the credentials, fans the batch out through the dispatcher,
// aggregates the item results and records the batch in the journal when one
// is configured.
type syncService struct {
	// yodeck is a copy of the process configuration; credentials are built
	// from it on every call and never mutated.
	yodeck config.Yodeck

	dispatcher *dispatcher

	// runs is nil when the journal is disabled.
	runs store.SyncRunRepository
	ids  *utils.UUIDGenerator

	metrics metrics.Recorder
	now     func() time.Time
	logger  *logger.Logger
}

// NewSyncService constructs a SyncService running uploads through uploader.
// runs may be nil, recorder defaults to [metrics.Nop].
func NewSyncService(cfg config.StructuredConfig, uploader Uploader, runs store.SyncRunRepository, recorder metrics.Recorder, logger *logger.Logger) SyncService {
	if recorder == nil {
		recorder = metrics.Nop()
	}

	s := &syncService{
		yodeck:  cfg.Yodeck,
		runs:    runs,
		ids:     utils.NewUUIDGenerator(),
		metrics: recorder,
		now:     time.Now,
		logger:  logger,
	}

	s.dispatcher = &dispatcher{
		executor: &itemExecutor{
			uploader: uploader,
			strategy: cfg.Yodeck.UploadStrategy,
			baseTags: cfg.Yodeck.Tags,
			metrics:  recorder,
			now:      func() time.Time { return s.now() },
		},
		concurrency: cfg.Sync.Concurrency,
		rateLimit:   cfg.Sync.RateLimit,
		rateBurst:   cfg.Sync.RateBurst,
	}

	return s
}

// Sync implements SyncService.
//
// Missing credentials reject the whole batch with [ErrConfiguration] before
// any item is attempted. Otherwise the response is always successful; item
// failures only show up in its counters and items.
func (s *syncService) Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	creds := models.Credentials{Label: s.yodeck.APILabel, Token: s.yodeck.APIToken}
	if !creds.IsComplete() {
		s.metrics.ObserveBatch(metrics.BatchRejected)
		log.Error().
			Str("func", "*syncService.Sync").
			Str("business_id", req.BusinessID).
			Msg("sync rejected: yodeck credentials are not configured")
		return models.SyncResponse{}, ErrConfiguration
	}

	// item and journal logs inherit the batch's business id
	log = log.WithStr("business_id", req.BusinessID)
	ctx = log.WithContext(ctx)

	started := s.now()
	log.Info().
		Str("func", "*syncService.Sync").
		Int("items", len(req.Content)).
		Str("strategy", s.yodeck.UploadStrategy).
		Msg("sync batch started")

	results := s.dispatcher.Dispatch(ctx, req, creds)
	resp := Aggregate(req.BusinessID, results)
	finished := s.now()

	s.recordRun(ctx, req, resp, started, finished)
	s.metrics.ObserveBatch(metrics.BatchCompleted)

	log.Info().
		Str("func", "*syncService.Sync").
		Int("synced", resp.SyncedCount).
		Int("failed", resp.FailedCount).
		Dur("took", finished.Sub(started)).
		Msg("sync batch completed")

	return resp, nil
}

// recordRun writes the batch summary to the journal. Failures are logged
// and never reach the caller.
func (s *syncService) recordRun(ctx context.Context, req models.SyncRequest, resp models.SyncResponse, started, finished time.Time) {
	if s.runs == nil {
		return
	}

	run := models.SyncRun{
		ID:           s.ids.Generate(),
		BusinessID:   req.BusinessID,
		BusinessName: req.BusinessName,
		Strategy:     s.yodeck.UploadStrategy,
		Total:        len(resp.Items),
		Synced:       resp.SyncedCount,
		Failed:       resp.FailedCount,
		StartedAt:    started,
		FinishedAt:   finished,
	}

	// journal writes outlive request cancellation
	if err := s.runs.SaveRun(context.WithoutCancel(ctx), run); err != nil {
		logger.FromContext(ctx).Err(fmt.Errorf("error saving sync run: %w", err)).
			Str("func", "*syncService.recordRun").
			Str("run_id", run.ID).
			Msg("sync journal write failed")
	}
}
