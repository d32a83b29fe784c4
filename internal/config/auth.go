package config

import (
	"fmt"
	"os"
	"time"
)

const (
	EnvAuthSecret    = "AUTH_SECRET"
	EnvAuthIssuer    = "AUTH_ISSUER"
	EnvAuthAccessTTL = "AUTH_ACCESS_TTL"
)

// AuthConfig holds the bearer token settings shared by the API and cmd/token.
type AuthConfig struct {
	Secret    string `toml:"secret"`
	Issuer    string `toml:"issuer"`
	AccessTTL string `toml:"access_ttl"`
}

func (c *AuthConfig) AccessTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.AccessTTL)
	return d
}

func (c *AuthConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.Secret != "" {
		c.Secret = overlay.Secret
	}
	if overlay.Issuer != "" {
		c.Issuer = overlay.Issuer
	}
	if overlay.AccessTTL != "" {
		c.AccessTTL = overlay.AccessTTL
	}
}

func (c *AuthConfig) loadDefaults() {
	if c.Issuer == "" {
		c.Issuer = "admin-console"
	}
	if c.AccessTTL == "" {
		c.AccessTTL = "1h"
	}
}

func (c *AuthConfig) loadEnv() {
	if v := os.Getenv(EnvAuthSecret); v != "" {
		c.Secret = v
	}
	if v := os.Getenv(EnvAuthIssuer); v != "" {
		c.Issuer = v
	}
	if v := os.Getenv(EnvAuthAccessTTL); v != "" {
		c.AccessTTL = v
	}
}

func (c *AuthConfig) validate() error {
	if len(c.Secret) < 32 {
		return fmt.Errorf("secret must be at least 32 bytes")
	}
	d, err := time.ParseDuration(c.AccessTTL)
	if err != nil {
		return fmt.Errorf("invalid access_ttl: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("access_ttl must be positive")
	}
	return nil
}
