// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"errors"
	"time"
)

var (
	// ErrMissingSecretKey is returned by LoadConfig when no signing secret
	// has been provided. The server must not start without one.
	ErrMissingSecretKey = errors.New("secret key is not configured")

	// ErrInvalidTokenValidity is returned by LoadConfig when the token
	// lifetime is zero or negative: every issued token would already be
	// expired.
	ErrInvalidTokenValidity = errors.New("token validity duration must be positive")
)

// Config holds runtime settings for the authgate server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory
//     identity store.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Has no default;
//     the process refuses to start without it.
//   - TokenValidityDuration: lifetime of issued tokens.
type Config struct {
	EndpointAddr          string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
}

// LoadDefaults populates Config with development defaults. SecretKey is
// deliberately left empty: it must come from the JSON file or flags.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3001"
	c.DatabaseDSN = ""
	c.TokenValidityDuration = 1 * time.Hour
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return ErrMissingSecretKey
	}
	if c.TokenValidityDuration <= 0 {
		return ErrInvalidTokenValidity
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags. It fails
// if the result is incomplete, most notably when no secret key is set.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
