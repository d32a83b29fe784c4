package console

import (
	"log/slog"

	"github.com/JaimeStill/admin-console/internal/auth"
	"github.com/JaimeStill/admin-console/pkg/middleware"
	"github.com/JaimeStill/admin-console/pkg/module"
)

// NewModule mounts the console at cfg.BasePath behind authn. Unauthenticated
// page requests receive the rendered error page. A nil metrics disables
// request instrumentation.
func NewModule(
	cfg Config,
	codes auth.CodeSource,
	mapStatus func(error) int,
	authn *auth.Authenticator,
	logger *slog.Logger,
	metrics *middleware.Metrics,
) (*module.Module, error) {
	h, err := NewHandler(cfg, codes, mapStatus, logger)
	if err != nil {
		return nil, err
	}

	m := module.New(cfg.BasePath, h.Routes())
	m.Use(middleware.RequestID())
	if metrics != nil {
		m.Use(metrics.Handler("console"))
	}
	m.Use(middleware.Logger(logger))
	m.Use(h.Authenticate(authn))

	return m, nil
}
