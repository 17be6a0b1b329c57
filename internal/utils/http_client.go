package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultUserAgent = "yodeck-sync"

// HTTPClient wraps resty.Client so outbound adapters share one way of
// building clients.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient]. Zero fields are left at the
// resty defaults.
type HTTPClientOptions struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string

	// Headers are sent with every request.
	Headers map[string]string
}

// NewHTTPClient returns an independent client with its own connection pool.
// Retries are disabled: media uploads are not idempotent.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().SetRetryCount(0)

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client.SetHeader("User-Agent", userAgent)
	client.SetHeaders(opts.Headers)

	return &HTTPClient{Client: client}
}
