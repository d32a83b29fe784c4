package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	EnvConsoleBasePath = "CONSOLE_BASE_PATH"
	EnvConsoleLocale   = "CONSOLE_LOCALE"
)

// ConsoleConfig configures the server-rendered console shell.
type ConsoleConfig struct {
	BasePath string `toml:"base_path"`
	Locale   string `toml:"locale"`
}

func (c *ConsoleConfig) Finalize() error {
	if c.BasePath == "" {
		c.BasePath = "/app"
	}
	if c.Locale == "" {
		c.Locale = "en-US"
	}
	if v := os.Getenv(EnvConsoleBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvConsoleLocale); v != "" {
		c.Locale = v
	}

	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base_path must start with /: %q", c.BasePath)
	}
	return nil
}

func (c *ConsoleConfig) Merge(overlay *ConsoleConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.Locale != "" {
		c.Locale = overlay.Locale
	}
}
