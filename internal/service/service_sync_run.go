package service

import (
	"context"

	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
	"github.com/YZcontent/yz-ad-club-backend/internal/store"
	"github.com/YZcontent/yz-ad-club-backend/models"
)

const (
	defaultRunsLimit uint64 = 20
	maxRunsLimit     uint64 = 100
)

type syncRunService struct {
	runs store.SyncRunRepository

	logger *logger.Logger
}

// NewSyncRunService constructs a SyncRunService. With a nil repository
// every call fails with [ErrJournalDisabled].
func NewSyncRunService(runs store.SyncRunRepository, logger *logger.Logger) SyncRunService {
	return &syncRunService{
		runs:   runs,
		logger: logger,
	}
}

// ListRuns implements SyncRunService. A zero limit means 20; larger limits
// are capped at 100.
func (s *syncRunService) ListRuns(ctx context.Context, filter models.SyncRunFilter) ([]models.SyncRun, error) {
	if s.runs == nil {
		return nil, ErrJournalDisabled
	}

	switch {
	case filter.Limit == 0:
		filter.Limit = defaultRunsLimit
	case filter.Limit > maxRunsLimit:
		filter.Limit = maxRunsLimit
	}

	return s.runs.ListRuns(ctx, filter)
}
