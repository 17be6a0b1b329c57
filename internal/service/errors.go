package service

import "errors"

var (
	// ErrValidation wraps every structural rejection of a sync request.
	ErrValidation = errors.New("invalid sync request")

	// ErrConfiguration is returned when the Yodeck credentials are missing.
	ErrConfiguration = errors.New("yodeck API credentials are not configured")

	ErrMissingFileURL  = errors.New("content item has no file_url")
	ErrUnknownStrategy = errors.New("unknown upload strategy")
	ErrRateLimited     = errors.New("rate limiter wait aborted")
	ErrItemPanic       = errors.New("item upload panicked")

	ErrJournalDisabled = errors.New("sync journal is disabled")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
