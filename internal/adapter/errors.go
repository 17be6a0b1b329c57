package adapter

import "errors"

var (
	ErrInvalidBaseURL = errors.New("invalid yodeck base url")

	ErrUpstream      = errors.New("yodeck upload failed")
	ErrResponseParse = errors.New("unexpected yodeck response")
	ErrDownload      = errors.New("source download failed")
)

// uploadFallbackMessage is reported when Yodeck rejects an upload without a
// detail field.
const uploadFallbackMessage = "Failed to upload media to Yodeck"
