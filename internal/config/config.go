// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Upload strategies understood by [Yodeck.UploadStrategy].
const (
	// StrategyReference forwards the source URL and lets Yodeck fetch it.
	StrategyReference = "reference"

	// StrategyProxy downloads the source locally and re-uploads the bytes.
	StrategyProxy = "proxy"
)

// StructuredConfig is the top-level configuration container of the sync
// server. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds network address, timeout and body limit settings for the
	// inbound HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Yodeck holds the external media service settings, including the two
	// API secrets.
	Yodeck Yodeck `envPrefix:"YODECK_"`

	// Sync holds batch scheduling settings.
	Sync Sync `envPrefix:"SYNC_"`

	// Storage holds the optional sync journal settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a whole inbound request, including every item
	// upload of the batch (e.g. "5m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodyBytes caps the size of an inbound request body.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`
}

// Yodeck holds the settings of the external media service.
type Yodeck struct {
	// APILabel is the first half of the API token ("label:token").
	// Env: YODECK_API_LABEL
	APILabel string `env:"API_LABEL"`

	// APIToken is the second half of the API token. Must be kept confidential.
	// Env: YODECK_API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// BaseURL is the API root, e.g. "https://api.yodeck.com".
	// Env: YODECK_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// UploadStrategy is either "reference" or "proxy".
	// Env: YODECK_UPLOAD_STRATEGY
	UploadStrategy string `env:"UPLOAD_STRATEGY"`

	// RequestTimeout bounds each outbound call (upload or source download).
	// Env: YODECK_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxDownloadBytes caps the size of a source asset fetched by
	// proxy-upload.
	// Env: YODECK_MAX_DOWNLOAD_BYTES
	MaxDownloadBytes int64 `env:"MAX_DOWNLOAD_BYTES"`

	// Tags are the base tags attached to every uploaded media; the business
	// name is appended per request.
	// Env: YODECK_TAGS (comma separated)
	Tags []string `env:"TAGS" envSeparator:","`
}

// Sync holds batch scheduling settings.
type Sync struct {
	// Concurrency is the number of items uploaded in parallel. Values below
	// 2 process the batch sequentially.
	// Env: SYNC_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`

	// RateLimit caps outbound uploads per second across a batch; 0 disables
	// rate limiting.
	// Env: SYNC_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token bucket size; defaults to the rate limit.
	// Env: SYNC_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Storage groups the configuration for the sync journal.
type Storage struct {
	// DB holds the journal database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the journal database.
type DB struct {
	// DSN is either a PostgreSQL URL ("postgres://...") or a SQLite file
	// path. Empty disables the journal.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. Earlier sources take precedence
// for non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
