package main

import (
	"net/http"

	"github.com/JaimeStill/admin-console/internal/api"
	"github.com/JaimeStill/admin-console/internal/auth"
	"github.com/JaimeStill/admin-console/internal/config"
	"github.com/JaimeStill/admin-console/internal/infrastructure"
	"github.com/JaimeStill/admin-console/internal/users"
	"github.com/JaimeStill/admin-console/pkg/middleware"
	"github.com/JaimeStill/admin-console/pkg/module"
	"github.com/JaimeStill/admin-console/web/console"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "admin_console"

type Modules struct {
	API     *module.Module
	Console *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config, metrics *middleware.Metrics) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra, metrics)
	if err != nil {
		return nil, err
	}

	scoped := infra.Scoped("console")
	grants := users.New(scoped.Database.Connection(), scoped.Logger, cfg.API.Pagination)
	tokens := auth.NewTokens(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.AccessTTLDuration())
	authn := auth.NewAuthenticator(tokens, grants, users.MapAccountStatus)

	consoleModule, err := console.NewModule(
		console.Config{
			BasePath:    cfg.Console.BasePath,
			APIBasePath: cfg.API.BasePath,
			Locale:      cfg.Console.Locale,
		},
		grants,
		users.MapHTTPStatus,
		authn,
		scoped.Logger,
		metrics,
	)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API:     apiModule,
		Console: consoleModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.Console)
}

type telemetry struct {
	registry *prometheus.Registry
	metrics  *middleware.Metrics
}

func newTelemetry() *telemetry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &telemetry{
		registry: reg,
		metrics:  middleware.NewMetrics(metricsNamespace, reg),
	}
}

func buildRouter(infra *infrastructure.Infrastructure, t *telemetry) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	router.HandleNativeHandler("GET /metrics", promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{Registry: t.registry}))

	return router
}
