package config

import "time"

const (
	defaultHTTPAddress       = "0.0.0.0:8080"
	defaultServerTimeout     = 5 * time.Minute
	defaultMaxBodyBytes      = 10 << 20
	defaultYodeckBaseURL     = "https://api.yodeck.com"
	defaultYodeckTimeout     = 60 * time.Second
	defaultMaxDownloadBytes  = 100 << 20
	defaultSyncConcurrency   = 1
	defaultApplicationVesion = "dev"
	defaultLogLevel          = "info"
)

var defaultTags = []string{"base44", "upload"}

// defaults is the lowest-priority source; it only fills fields no other
// source has set. The API secrets have no defaults.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  defaultApplicationVesion,
			LogLevel: defaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultServerTimeout,
			MaxBodyBytes:   defaultMaxBodyBytes,
		},
		Yodeck: Yodeck{
			BaseURL:          defaultYodeckBaseURL,
			UploadStrategy:   StrategyReference,
			RequestTimeout:   defaultYodeckTimeout,
			MaxDownloadBytes: defaultMaxDownloadBytes,
			Tags:             append([]string(nil), defaultTags...),
		},
		Sync: Sync{
			Concurrency: defaultSyncConcurrency,
		},
	}
}
