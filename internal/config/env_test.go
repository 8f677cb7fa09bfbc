package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "supersecret")
	t.Setenv("AUTH_TOKEN_ISSUER", "test-issuer")
	t.Setenv("AUTH_TOKEN_DURATION", "45m")
	t.Setenv("AUTH_BCRYPT_COST", "12")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/items")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9999")
	t.Setenv("SERVER_RATE_LIMIT", "50")
	t.Setenv("ADMIN_USERNAME", "root")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.NoError(t, err)

	assert.Equal(t, "supersecret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "test-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "postgres://localhost:5432/items", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 50, cfg.Server.RateLimit)
	assert.Equal(t, "root", cfg.Admin.Username)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.NoError(t, err)

	assert.Empty(t, cfg.Auth.TokenSignKey)
	assert.Zero(t, cfg.Auth.TokenDuration)
	assert.Empty(t, cfg.Storage.DB.DSN)
}
