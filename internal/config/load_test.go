package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("SAVORY_DATABASE_URL", "postgres://localhost:5432/savory_test")
	t.Setenv("SAVORY_AUTH_ACCESS_TOKEN_SECRET", "test-access-secret-0123456789abcdef")
	t.Setenv("SAVORY_AUTH_REFRESH_TOKEN_SECRET", "test-refresh-secret-0123456789abcdef")
}

func TestLoad_DefaultsApplied(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 7*24*60, cfg.Auth.AccessTokenLifetimeMinutes)
	assert.Equal(t, 365*24*60, cfg.Auth.RefreshTokenLifetimeMinutes)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SAVORY_SERVER_PORT", "8080")
	t.Setenv("SAVORY_SERVER_LOG_LEVEL", "debug")
	t.Setenv("SAVORY_AUTH_ACCESS_TOKEN_LIFETIME_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 15, cfg.Auth.AccessTokenLifetimeMinutes)
}

func TestLoad_MissingSecretsFail(t *testing.T) {
	t.Setenv("SAVORY_DATABASE_URL", "postgres://localhost:5432/savory_test")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ShortSecretFails(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SAVORY_AUTH_ACCESS_TOKEN_SECRET", "short")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadLogLevelFails(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SAVORY_SERVER_LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}
