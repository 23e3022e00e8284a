package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
//
// The default token lifetimes mirror the product's original behavior: the
// access token lives 7 days and the refresh token a full year. Both are
// configurable; deployments wanting short-lived access tokens only need to
// lower AccessTokenLifetimeMinutes.
type AuthConfig struct {
	AccessTokenSecret  string `mapstructure:"access_token_secret"  validate:"required,min=32"`
	RefreshTokenSecret string `mapstructure:"refresh_token_secret" validate:"required,min=32"`

	// AccessTokenLifetimeMinutes is the access token lifetime in minutes.
	AccessTokenLifetimeMinutes int `mapstructure:"access_token_lifetime_minutes" validate:"required,gt=0"`

	// RefreshTokenLifetimeMinutes is the refresh token lifetime in minutes.
	RefreshTokenLifetimeMinutes int `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`
}
