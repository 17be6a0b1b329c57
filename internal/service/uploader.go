package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/YZcontent/yz-ad-club-backend/internal/adapter"
	"github.com/YZcontent/yz-ad-club-backend/internal/config"
	"github.com/YZcontent/yz-ad-club-backend/models"
)

// NewUploader returns the [Uploader] of the named strategy.
func NewUploader(strategy string, library adapter.MediaLibrary, fetcher adapter.SourceFetcher) (Uploader, error) {
	switch strategy {
	case config.StrategyReference:
		return &referenceUploader{library: library}, nil
	case config.StrategyProxy:
		return &proxyUploader{library: library, fetcher: fetcher}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// referenceUploader lets Yodeck download the source itself.
type referenceUploader struct {
	library adapter.MediaLibrary
}

func (u *referenceUploader) Upload(ctx context.Context, upload models.MediaUpload, creds models.Credentials) (models.MediaRecord, error) {
	return u.library.CreateMedia(ctx, creds, upload)
}

// proxyUploader downloads the source and streams the bytes to Yodeck.
type proxyUploader struct {
	library adapter.MediaLibrary
	fetcher adapter.SourceFetcher
}

func (u *proxyUploader) Upload(ctx context.Context, upload models.MediaUpload, creds models.Credentials) (models.MediaRecord, error) {
	file, err := u.fetcher.Fetch(ctx, upload.SourceURL)
	if err != nil {
		return models.MediaRecord{}, err
	}

	return u.library.UploadMedia(ctx, creds, upload, file)
}

// buildMediaUpload maps a content item onto the Yodeck upload contract.
func buildMediaUpload(item models.ContentItem, baseTags []string, businessName string, now time.Time) models.MediaUpload {
	name := strings.TrimSpace(item.Title)
	if name == "" {
		name = fmt.Sprintf("Content-%d", now.UnixMilli())
	}

	mediaType := models.MapMediaType(item.ContentType)

	var duration models.Seconds
	if item.Duration > 0 && mediaType.AcceptsDuration() {
		duration = item.Duration
	}

	tags := make([]string, 0, len(baseTags)+1)
	tags = append(tags, baseTags...)
	if bn := strings.TrimSpace(businessName); bn != "" {
		tags = append(tags, bn)
	}

	return models.MediaUpload{
		Name:              name,
		MediaType:         mediaType,
		Description:       item.Description,
		SourceURL:         item.FileURL,
		Duration:          duration,
		Tags:              tags,
		PlayUntilComplete: true,
	}
}
