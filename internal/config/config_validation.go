// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants.
//
// The Yodeck API secrets are deliberately not checked here: missing
// credentials reject each sync request individually, so the server still
// starts and answers with a configuration error.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.MaxBodyBytes <= 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Yodeck.UploadStrategy {
	case StrategyReference, StrategyProxy:
	default:
		return fmt.Errorf("%w: unknown upload strategy %q", ErrInvalidYodeckConfigs, cfg.Yodeck.UploadStrategy)
	}

	u, err := url.Parse(strings.TrimSpace(cfg.Yodeck.BaseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url must include scheme and host", ErrInvalidYodeckConfigs)
	}

	if cfg.Yodeck.RequestTimeout <= 0 || cfg.Yodeck.MaxDownloadBytes <= 0 {
		return ErrInvalidYodeckConfigs
	}

	if cfg.Sync.Concurrency < 0 || cfg.Sync.RateLimit < 0 || cfg.Sync.RateBurst < 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
