package openapi

import "os"

// Config holds document metadata.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// Env maps environment variable names for document metadata.
type Env struct {
	Title       string
	Description string
}

func (c *Config) Finalize(env *Env) error {
	if c.Title == "" {
		c.Title = "Admin Console API"
	}
	if c.Description == "" {
		c.Description = "User, role, menu and department administration."
	}
	if env != nil {
		if v := lookup(env.Title); v != "" {
			c.Title = v
		}
		if v := lookup(env.Description); v != "" {
			c.Description = v
		}
	}
	return nil
}

func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
