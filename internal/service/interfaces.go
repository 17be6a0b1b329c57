// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/YZcontent/yz-ad-club-backend/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService mirrors a catalog batch into the Yodeck media library.
//
// Sync returns an error only for request-fatal conditions ([ErrValidation],
// [ErrConfiguration]). Item failures are reported inside the response.
type SyncService interface {
	Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)
}

// SyncRunService reads the sync journal.
type SyncRunService interface {
	ListRuns(ctx context.Context, filter models.SyncRunFilter) ([]models.SyncRun, error)
}

// AppInfoService reports what is running.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// Uploader creates one media in Yodeck following an upload strategy.
type Uploader interface {
	Upload(ctx context.Context, upload models.MediaUpload, creds models.Credentials) (models.MediaRecord, error)
}
