package initializer

import (
	"fmt"

	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/store"
)

// InitializeDependencies builds the logger and an empty account store.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	if cfg == nil || cfg.Log == nil {
		return nil, fmt.Errorf("failed to initialize dependencies: log config is required")
	}
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	deps.Store = store.NewMemoryStore(store.WithLogger(logger))
	logger.Debug("Account store initialized", "env", cfg.Env)

	return deps, nil
}
