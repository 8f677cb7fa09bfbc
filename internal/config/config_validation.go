package config

import "time"

// Defaults applied by validate for fields that were left unset by every
// configuration source.
const (
	defaultHTTPAddress     = ":8080"
	defaultTokenIssuer     = "itemkeeper"
	defaultTokenDuration   = time.Hour
	defaultRequestTimeout  = 30 * time.Second
	defaultRateLimitWindow = time.Minute
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and fills in
// defaults for optional fields.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}
	if cfg.Auth.BcryptCost < 0 || cfg.Auth.BcryptCost > 31 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.RateLimit < 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.RateLimit > 0 && cfg.Server.RateLimitWindow == 0 {
		cfg.Server.RateLimitWindow = defaultRateLimitWindow
	}

	// Admin bootstrap is optional, but when requested it must be complete.
	if cfg.Admin != (Admin{}) {
		if cfg.Admin.Email == "" || cfg.Admin.Username == "" || cfg.Admin.Password == "" {
			return ErrInvalidAdminConfigs
		}
	}

	return nil
}
