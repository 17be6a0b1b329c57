package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
	"github.com/YZcontent/yz-ad-club-backend/internal/metrics"
	"github.com/YZcontent/yz-ad-club-backend/models"
)

// itemExecutor runs the upload strategy for one content item. Execute never
// fails: every error, including a recovered panic, becomes an error result.
type itemExecutor struct {
	uploader Uploader
	strategy string
	baseTags []string
	metrics  metrics.Recorder
	now      func() time.Time
}

func (e *itemExecutor) Execute(ctx context.Context, item models.ContentItem, businessName string, creds models.Credentials) (result models.ItemResult) {
	log := logger.FromContext(ctx)
	started := e.now()

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("func", "*itemExecutor.Execute").
				Str("content_id", item.ID.String()).
				Interface("panic", r).
				Msg("recovered panic during item upload")
			result = models.NewErrorResult(item.ID, fmt.Errorf("%w: %v", ErrItemPanic, r))
		}
		e.metrics.ObserveItem(e.strategy, result.Status, e.now().Sub(started))
	}()

	if item.DecodeErr != nil {
		log.Warn().
			Err(item.DecodeErr).
			Str("func", "*itemExecutor.Execute").
			Str("content_id", item.ID.String()).
			Msg("content item skipped: malformed element")
		return models.NewErrorResult(item.ID, item.DecodeErr)
	}

	if strings.TrimSpace(item.FileURL) == "" {
		log.Warn().
			Str("func", "*itemExecutor.Execute").
			Str("content_id", item.ID.String()).
			Msg("content item skipped: no file_url")
		return models.NewErrorResult(item.ID, ErrMissingFileURL)
	}

	upload := buildMediaUpload(item, e.baseTags, businessName, started)

	record, err := e.uploader.Upload(ctx, upload, creds)
	if err != nil {
		log.Err(err).
			Str("func", "*itemExecutor.Execute").
			Str("content_id", item.ID.String()).
			Str("media_type", string(upload.MediaType)).
			Msg("content item upload failed")
		return models.NewErrorResult(item.ID, err)
	}

	if record.Name == "" {
		record.Name = upload.Name
	}

	log.Info().
		Str("func", "*itemExecutor.Execute").
		Str("content_id", item.ID.String()).
		Str("yodeck_id", record.ID.String()).
		Str("media_type", string(upload.MediaType)).
		Msg("content item uploaded")

	return models.NewSuccessResult(item.ID, record)
}
