package store

import (
	"context"

	"github.com/YZcontent/yz-ad-club-backend/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SyncRunRepository persists the sync journal.
type SyncRunRepository interface {
	// SaveRun inserts one completed batch.
	SaveRun(ctx context.Context, run models.SyncRun) error

	// ListRuns returns runs newest first, optionally restricted to one
	// business and capped by filter.Limit when it is non-zero.
	ListRuns(ctx context.Context, filter models.SyncRunFilter) ([]models.SyncRun, error)
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
