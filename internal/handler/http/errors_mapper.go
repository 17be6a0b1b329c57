package http

import (
	"errors"
	"net/http"

	"github.com/YZcontent/yz-ad-club-backend/internal/app"
	"github.com/YZcontent/yz-ad-club-backend/internal/service"
	"github.com/YZcontent/yz-ad-club-backend/internal/store"
	"github.com/YZcontent/yz-ad-club-backend/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:      http.StatusBadRequest,
	service.ErrConfiguration:   http.StatusInternalServerError,
	service.ErrJournalDisabled: http.StatusNotFound,

	ErrInvalidLimit: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessages lists the client-facing wording of errors. Order matters:
// the most specific match comes first.
var errorMessages = []struct {
	target  error
	message string
}{
	{validators.ErrMalformedBody, app.MsgInvalidContentFormat},
	{validators.ErrInvalidContent, app.MsgInvalidContentFormat},
	{validators.ErrInvalidBusinessID, app.MsgBusinessIDRequired},
	{service.ErrConfiguration, app.MsgCredentialsNotConfigured},
	{service.ErrJournalDisabled, app.MsgJournalDisabled},
	{ErrInvalidLimit, app.MsgInvalidLimit},
	{service.ErrValidation, app.MsgInvalidContentFormat},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return app.MsgInternalServerError
}
