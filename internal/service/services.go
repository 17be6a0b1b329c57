package service

import (
	"fmt"

	"github.com/YZcontent/yz-ad-club-backend/internal/adapter"
	"github.com/YZcontent/yz-ad-club-backend/internal/config"
	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
	"github.com/YZcontent/yz-ad-club-backend/internal/metrics"
	"github.com/YZcontent/yz-ad-club-backend/internal/store"
	"github.com/YZcontent/yz-ad-club-backend/models"
)

type Services struct {
	SyncService    SyncService
	SyncRunService SyncRunService
	AppInfoService AppInfoService

	// Metrics receives batch outcomes the transport decides on itself, such
	// as bodies that never decode into a request.
	Metrics metrics.Recorder
}

func NewServices(cfg *config.StructuredConfig, build models.AppBuildInfo, storages *store.Storages, library adapter.MediaLibrary, fetcher adapter.SourceFetcher, recorder metrics.Recorder, logger *logger.Logger) (*Services, error) {
	uploader, err := NewUploader(cfg.Yodeck.UploadStrategy, library, fetcher)
	if err != nil {
		return nil, fmt.Errorf("error creating uploader: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	if recorder == nil {
		recorder = metrics.Nop()
	}

	syncService := NewSyncValidationService(recorder).Wrap(
		NewSyncService(*cfg, uploader, storages.SyncRunRepository, recorder, logger),
	)

	return &Services{
		SyncService:    syncService,
		SyncRunService: NewSyncRunService(storages.SyncRunRepository, logger),
		AppInfoService: appInfoService,
		Metrics:        recorder,
	}, nil
}
