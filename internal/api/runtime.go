package api

import (
	"github.com/JaimeStill/admin-console/internal/auth"
	"github.com/JaimeStill/admin-console/internal/config"
	"github.com/JaimeStill/admin-console/internal/infrastructure"
	"github.com/JaimeStill/admin-console/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Tokens     *auth.Tokens
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: infra.Scoped("api"),
		Pagination:     cfg.API.Pagination,
		Tokens: auth.NewTokens(
			cfg.Auth.Secret,
			cfg.Auth.Issuer,
			cfg.Auth.AccessTTLDuration(),
		),
	}
}
