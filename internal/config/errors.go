package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates missing credentials or an unusable
	// platform, format, base URL or transport limit.
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidCacheConfigs indicates a negative cache size or TTL.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero keep-alive interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
