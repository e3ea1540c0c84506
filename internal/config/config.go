package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Review   ReviewConfig   `mapstructure:"review"   validate:"required"`
	Practice PracticeConfig `mapstructure:"practice" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// ReviewConfig contains the review-scheduling settings.
type ReviewConfig struct {
	// CooldownMinutes is the anti-gaming window after an accepted review
	// during which further reviews of the same word are rejected.
	CooldownMinutes int `mapstructure:"cooldown_minutes" validate:"required,gt=0"`
}

// PracticeConfig contains the practice-selection settings.
type PracticeConfig struct {
	// DefaultLimit is the number of words drawn when a caller does not
	// pass an explicit limit.
	DefaultLimit int `mapstructure:"default_limit" validate:"required,gt=0"`

	// MaxLimit caps the limit a caller may request.
	MaxLimit int `mapstructure:"max_limit" validate:"required,gt=0"`
}
