// Package infrastructure assembles the dependencies every module needs:
// lifecycle coordination, logging and the database connection.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/admin-console/internal/config"
	"github.com/JaimeStill/admin-console/pkg/database"
	"github.com/JaimeStill/admin-console/pkg/lifecycle"
	"github.com/JaimeStill/admin-console/pkg/logging"
)

// Infrastructure holds the core systems shared by the API and console modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
}

// New builds the systems without starting them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
	}, nil
}

// Start registers every system with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}

// Scoped returns a copy whose logger carries module=name.
func (i *Infrastructure) Scoped(name string) *Infrastructure {
	return &Infrastructure{
		Lifecycle: i.Lifecycle,
		Logger:    i.Logger.With("module", name),
		Database:  i.Database,
	}
}
