package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, missing address or non-positive timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidYodeckConfigs indicates invalid media service settings
	// (for example, an unknown upload strategy or a malformed base URL).
	ErrInvalidYodeckConfigs = errors.New("invalid yodeck configuration")
	// ErrInvalidSyncConfigs indicates invalid batch scheduling settings
	// (for example, negative concurrency).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
