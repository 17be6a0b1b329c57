package http

import (
	"net/http"

	"github.com/YZcontent/yz-ad-club-backend/internal/config"
	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
	"github.com/YZcontent/yz-ad-club-backend/internal/service"
)

type Handler struct {
	services *service.Services

	// metrics serves /metrics; nil leaves the route unregistered.
	metrics http.Handler

	maxBodyBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		metrics:      metrics,
		maxBodyBytes: cfg.MaxBodyBytes,
		logger:       logger,
	}
}
