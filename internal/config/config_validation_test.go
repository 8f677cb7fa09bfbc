package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey: "secret",
		},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost:5432/items"},
		},
	}
}

func TestValidate_AppliesDefaults(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.validate())

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.Auth.TokenDuration)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
}

func TestValidate_KeepsExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.Server.HTTPAddress = "127.0.0.1:9090"
	cfg.Auth.TokenDuration = 15 * time.Minute

	require.NoError(t, cfg.validate())

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenDuration)
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestValidate_MissingTokenSignKey(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.TokenSignKey = ""

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestValidate_BcryptCostOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.BcryptCost = 99

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestValidate_RateLimitWindowDefaultedWhenLimited(t *testing.T) {
	cfg := validConfig()
	cfg.Server.RateLimit = 100

	require.NoError(t, cfg.validate())
	assert.Equal(t, defaultRateLimitWindow, cfg.Server.RateLimitWindow)
}

func TestValidate_PartialAdminBootstrap(t *testing.T) {
	cfg := validConfig()
	cfg.Admin = Admin{Username: "root"} // email and password missing

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidAdminConfigs)
}

func TestValidate_CompleteAdminBootstrap(t *testing.T) {
	cfg := validConfig()
	cfg.Admin = Admin{
		Email:    "admin@example.com",
		Username: "admin",
		Password: "changeme",
	}

	require.NoError(t, cfg.validate())
}
