// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/YZcontent/yz-ad-club-backend/internal/config"
	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
	"github.com/YZcontent/yz-ad-club-backend/internal/utils"
	"github.com/YZcontent/yz-ad-club-backend/models"
)

const mediaPath = "/media/"

type yodeckAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewYodeckAdapter constructs the resty implementation of [MediaLibrary].
// It normalises cfg.BaseURL and applies cfg.RequestTimeout to every call.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewYodeckAdapter(cfg config.Yodeck, logger *logger.Logger) (MediaLibrary, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL: baseURL,
		Timeout: cfg.RequestTimeout,
		Headers: map[string]string{"Accept": "application/json"},
	})

	return &yodeckAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateMedia implements [MediaLibrary]. It POSTs upload as JSON to
// /media/.
func (y *yodeckAdapter) CreateMedia(ctx context.Context, creds models.Credentials, upload models.MediaUpload) (models.MediaRecord, error) {
	if upload.Tags == nil {
		upload.Tags = []string{}
	}

	resp, err := y.client.R().
		SetContext(ctx).
		SetHeader("Authorization", creds.AuthorizationHeader()).
		SetHeader("Content-Type", "application/json").
		SetBody(upload).
		Post(mediaPath)
	if err != nil {
		return models.MediaRecord{}, fmt.Errorf("%w: create media request: %w", ErrUpstream, err)
	}

	y.logger.Debug().
		Str("func", "yodeckAdapter.CreateMedia").
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("media created by reference")

	return interpretMediaResponse(resp)
}

// UploadMedia implements [MediaLibrary]. The metadata travels as form
// fields, tags as a JSON array, and the bytes under the "file" part.
func (y *yodeckAdapter) UploadMedia(ctx context.Context, creds models.Credentials, upload models.MediaUpload, file models.MediaFile) (models.MediaRecord, error) {
	fields, err := multipartFields(upload)
	if err != nil {
		return models.MediaRecord{}, fmt.Errorf("%w: encode upload fields: %w", ErrUpstream, err)
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	resp, err := y.client.R().
		SetContext(ctx).
		SetHeader("Authorization", creds.AuthorizationHeader()).
		SetMultipartFormData(fields).
		SetMultipartField("file", file.FileName, contentType, bytes.NewReader(file.Data)).
		Post(mediaPath)
	if err != nil {
		return models.MediaRecord{}, fmt.Errorf("%w: upload media request: %w", ErrUpstream, err)
	}

	y.logger.Debug().
		Str("func", "yodeckAdapter.UploadMedia").
		Int("status", resp.StatusCode()).
		Int("bytes", len(file.Data)).
		Dur("took", resp.Time()).
		Msg("media uploaded")

	return interpretMediaResponse(resp)
}

func multipartFields(upload models.MediaUpload) (map[string]string, error) {
	tags := upload.Tags
	if tags == nil {
		tags = []string{}
	}
	encodedTags, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{
		"name":                upload.Name,
		"media_type":          string(upload.MediaType),
		"description":         upload.Description,
		"tags":                string(encodedTags),
		"play_until_complete": strconv.FormatBool(upload.PlayUntilComplete),
	}
	if upload.Duration > 0 {
		fields["duration"] = strconv.Itoa(int(upload.Duration))
	}

	return fields, nil
}
