// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP clients of the sync server.
//
// [MediaLibrary] talks to the Yodeck media API; [SourceFetcher] downloads
// source assets for proxy-upload. Both are built on resty through
// utils.HTTPClient.
//
// Error values defined in errors.go are produced by interpretMediaResponse and
// by the fetcher so that callers can use [errors.Is] regardless of the
// concrete failure (e.g. [ErrUpstream] for a non-2xx answer, [ErrDownload]
// for an unreachable source).
package adapter

import (
	"context"

	"github.com/YZcontent/yz-ad-club-backend/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// MediaLibrary creates media in the Yodeck library. Implementations attach
// the Authorization header built from the per-request credentials and map the
// response onto [models.MediaRecord] or one of the sentinel errors.
type MediaLibrary interface {
	// CreateMedia registers a media by reference: Yodeck fetches
	// upload.SourceURL itself. The payload is sent as JSON.
	CreateMedia(ctx context.Context, creds models.Credentials, upload models.MediaUpload) (models.MediaRecord, error)

	// UploadMedia sends the metadata of upload together with the bytes of
	// file as a multipart body.
	UploadMedia(ctx context.Context, creds models.Credentials, upload models.MediaUpload, file models.MediaFile) (models.MediaRecord, error)
}

// SourceFetcher downloads a source asset into memory.
type SourceFetcher interface {
	// Fetch performs a GET on url. Transport errors, non-2xx answers and
	// bodies above the configured limit fail with [ErrDownload].
	Fetch(ctx context.Context, url string) (models.MediaFile, error)
}
