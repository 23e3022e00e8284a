package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default token lifetimes, in minutes. 7 days for access tokens and one
// year for refresh tokens, matching the behavior the API shipped with.
const (
	defaultAccessTokenLifetimeMinutes  = 7 * 24 * 60
	defaultRefreshTokenLifetimeMinutes = 365 * 24 * 60
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables use the
// SAVORY_ prefix with underscores for nesting (e.g. SAVORY_SERVER_PORT)
// and take precedence over file values.
// Returns a populated Config or an error if loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 4000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.access_token_lifetime_minutes", defaultAccessTokenLifetimeMinutes)
	v.SetDefault("auth.refresh_token_lifetime_minutes", defaultRefreshTokenLifetimeMinutes)

	// Optional config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables
	v.SetEnvPrefix("SAVORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// viper only surfaces env-var values for keys it already knows about,
	// so bind the nested keys explicitly.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"database.url",
		"auth.access_token_secret",
		"auth.refresh_token_secret",
		"auth.access_token_lifetime_minutes",
		"auth.refresh_token_lifetime_minutes",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env var for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
