package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment through the env / envPrefix tags
// of [StructuredConfig]. The strategy is lower-cased and blank tags are
// dropped so "YODECK_TAGS=a, ,b" yields [a b].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Yodeck.UploadStrategy = strings.ToLower(strings.TrimSpace(cfg.Yodeck.UploadStrategy))
	cfg.Yodeck.Tags = compactTags(cfg.Yodeck.Tags)

	return nil
}

func compactTags(tags []string) []string {
	if tags == nil {
		return nil
	}

	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
