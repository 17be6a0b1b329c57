// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/YZcontent/yz-ad-club-backend/models"
)

// Field name constants used to restrict [SyncRequestValidator.Validate] to a
// subset of checks.
const (
	// FieldContent targets the content list of a sync request.
	FieldContent = "content"

	// FieldBusinessID targets the tenant identifier of a sync request.
	FieldBusinessID = "businessId"
)

// SyncRequestValidator implements [Validator] for [models.SyncRequest].
// Item-level problems such as a blank file_url are not rejected here; they
// fail only the affected item during the upload.
type SyncRequestValidator struct{}

// NewSyncRequestValidator constructs a new SyncRequestValidator and returns
// it as the Validator interface.
func NewSyncRequestValidator() Validator {
	return &SyncRequestValidator{}
}

// Validate dispatches on the concrete type of obj. With no fields every
// check runs, content first.
func (v *SyncRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncRequest:
		return v.validateSyncRequest(ctx, value, fields...)
	case *models.SyncRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSyncRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SyncRequestValidator) validateSyncRequest(_ context.Context, request models.SyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent, FieldBusinessID}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if request.Content == nil {
				return ErrInvalidContent
			}
		case FieldBusinessID:
			if strings.TrimSpace(request.BusinessID) == "" {
				return ErrInvalidBusinessID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
