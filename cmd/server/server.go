package main

import (
	"time"

	"github.com/JaimeStill/admin-console/internal/config"
	"github.com/JaimeStill/admin-console/internal/infrastructure"
	"github.com/JaimeStill/admin-console/internal/migrations"
	"github.com/JaimeStill/admin-console/internal/server"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	telemetry := newTelemetry()

	modules, err := NewModules(infra, cfg, telemetry.metrics)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra, telemetry)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"api", cfg.API.BasePath,
		"console", cfg.Console.BasePath,
	)

	return &Server{
		infra:   infra,
		modules: modules,
		http:    server.New(&cfg.Server, cfg.ShutdownTimeoutDuration(), router, infra.Logger),
	}, nil
}

// Migrate applies pending schema migrations.
func (s *Server) Migrate(cfg *config.Config) error {
	return migrations.Up(cfg.Database.URL(migrations.Scheme), s.infra.Logger)
}

// Rollback reverts every schema migration.
func (s *Server) Rollback(cfg *config.Config) error {
	return migrations.Down(cfg.Database.URL(migrations.Scheme), s.infra.Logger)
}

// Start begins all subsystems and returns when they are ready.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
