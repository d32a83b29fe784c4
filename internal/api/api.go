// Package api assembles the resource API module: domain systems, their
// routes, the OpenAPI document and the middleware chain.
package api

import (
	"net/http"

	"github.com/JaimeStill/admin-console/internal/auth"
	"github.com/JaimeStill/admin-console/internal/config"
	"github.com/JaimeStill/admin-console/internal/infrastructure"
	"github.com/JaimeStill/admin-console/internal/users"
	"github.com/JaimeStill/admin-console/pkg/middleware"
	"github.com/JaimeStill/admin-console/pkg/module"
	"github.com/JaimeStill/admin-console/pkg/openapi"
)

// SpecPath is served without a bearer token.
const SpecPath = "/openapi.json"

// NewModule builds the API module mounted at cfg.API.BasePath. A nil metrics
// disables request instrumentation.
func NewModule(
	cfg *config.Config,
	infra *infrastructure.Infrastructure,
	metrics *middleware.Metrics,
) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)
	spec.RequireBearer()

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain, cfg)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET "+SpecPath, openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.RequestID())
	if metrics != nil {
		m.Use(metrics.Handler("api"))
	}
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.TrimSlash())
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.BodyLimit(cfg.API.MaxBodySizeBytes()))
	authn := auth.NewAuthenticator(runtime.Tokens, domain.Users, users.MapAccountStatus)
	m.Use(auth.Middleware(authn, runtime.Logger, SpecPath))

	return m, nil
}
