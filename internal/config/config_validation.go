// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Missing required secrets are reported as errors rather than patched
// with defaults: the process must not serve traffic without a token
// signing key or a database connection string.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.Server.AuthRateLimit.Max < 0 || cfg.Server.PublicRateLimit.Max < 0 {
		return ErrInvalidRateLimit
	}

	return nil
}
