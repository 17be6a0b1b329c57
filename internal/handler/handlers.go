package handler

import (
	"net/http"

	"github.com/YZcontent/yz-ad-club-backend/internal/config"
	handlerhttp "github.com/YZcontent/yz-ad-club-backend/internal/handler/http"
	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
	"github.com/YZcontent/yz-ad-club-backend/internal/service"
)

type Handlers struct {
	HTTP *handlerhttp.Handler
}

// NewHandlers builds the transport handlers. metrics may be nil.
func NewHandlers(services *service.Services, cfg config.Server, metrics http.Handler, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: handlerhttp.NewHandler(services, cfg, metrics, logger),
	}, nil
}
