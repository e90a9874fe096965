package config

import (
	"fmt"
	"time"
)

const minSecretLength = 16

// AuthConfig holds configuration for JWT token generation and validation.
// Authentication is disabled when no secret is configured.
type AuthConfig struct {
	JWTSecret       string `mapstructure:"jwt-secret"`
	ExpirationHours int    `mapstructure:"expiration-hours"`
}

// Enabled reports whether API requests must carry a bearer token.
func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// TokenTTL returns the lifetime of issued tokens.
func (c AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}

// normalize validates the configuration.
func (c AuthConfig) normalize() error {
	if c.JWTSecret != "" && len(c.JWTSecret) < minSecretLength {
		return fmt.Errorf("auth.jwt-secret must be at least %d characters", minSecretLength)
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("auth.expiration-hours must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}
