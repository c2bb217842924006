package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid. Each of them is fatal at
// startup: the process terminates instead of serving degraded requests.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was
	// supplied by any configuration source.
	ErrMissingTokenSignKey = errors.New("token signing key is not configured")
	// ErrMissingDatabaseDSN indicates that no database connection string
	// was supplied by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is not configured")
	// ErrInvalidRateLimit indicates a negative request-admission limit.
	ErrInvalidRateLimit = errors.New("invalid rate limit configuration")
)
