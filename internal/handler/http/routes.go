package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	syncPath     = "/api/yodeck-sync"
	syncRunsPath = "/api/yodeck-sync/runs"
	versionPath  = "/api/version/"
	metricsPath  = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Post(syncPath, h.syncContent)
		r.Get(syncRunsPath, h.listSyncRuns)
		r.Get(versionPath, h.getServerVersion)
	})

	// promhttp negotiates its own compression
	if h.metrics != nil {
		router.Method(http.MethodGet, metricsPath, h.metrics)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
