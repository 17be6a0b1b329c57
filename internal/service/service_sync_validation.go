package service

import (
	"context"
	"fmt"

	"github.com/YZcontent/yz-ad-club-backend/internal/metrics"
	"github.com/YZcontent/yz-ad-club-backend/internal/validators"
	"github.com/YZcontent/yz-ad-club-backend/models"
)

// SyncServiceWrapper defines middleware composition for SyncService.
// Implementations wrap an existing SyncService to add behavior such as
// validating.
type SyncServiceWrapper interface {
	Wrap(SyncService) SyncService // returns a decorated SyncService applying additional behavior
}

// SyncValidationService rejects malformed sync requests before they reach
// the wrapped SyncService.
type SyncValidationService struct {
	inner     SyncService
	validator validators.Validator
	metrics   metrics.Recorder
}

// NewSyncValidationService counts every rejected request as a rejected
// batch on recorder; nil disables that.
func NewSyncValidationService(recorder metrics.Recorder) SyncServiceWrapper {
	if recorder == nil {
		recorder = metrics.Nop()
	}
	return &SyncValidationService{
		validator: validators.NewSyncRequestValidator(),
		metrics:   recorder,
	}
}

func (v *SyncValidationService) Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldContent, validators.FieldBusinessID); err != nil {
		v.metrics.ObserveBatch(metrics.BatchRejected)
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Sync(ctx, req)
}

func (v *SyncValidationService) Wrap(wrapped SyncService) SyncService {
	v.inner = wrapped
	return v
}
