package main

import (
	"context"
	"fmt"
	"os"

	"github.com/YZcontent/yz-ad-club-backend/internal/adapter"
	"github.com/YZcontent/yz-ad-club-backend/internal/config"
	"github.com/YZcontent/yz-ad-club-backend/internal/handler"
	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
	"github.com/YZcontent/yz-ad-club-backend/internal/metrics"
	"github.com/YZcontent/yz-ad-club-backend/internal/server"
	"github.com/YZcontent/yz-ad-club-backend/internal/service"
	"github.com/YZcontent/yz-ad-club-backend/internal/store"
	"github.com/YZcontent/yz-ad-club-backend/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build.String())

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("yodeck-sync-server", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("strategy", cfg.Yodeck.UploadStrategy).
		Str("yodeck", cfg.Yodeck.BaseURL).
		Int("concurrency", cfg.Sync.Concurrency).
		Float64("rate_limit", cfg.Sync.RateLimit).
		Bool("credentials", cfg.Yodeck.APILabel != "" && cfg.Yodeck.APIToken != "").
		Bool("journal", cfg.Storage.DB.DSN != "").
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	recorder, err := metrics.NewPrometheusRecorder(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating metrics")
	}

	library, err := adapter.NewYodeckAdapter(cfg.Yodeck, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating yodeck adapter")
	}
	fetcher := adapter.NewSourceFetcher(cfg.Yodeck, log)

	services, err := service.NewServices(cfg, build, storages, library, fetcher, recorder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, recorder.Handler(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
