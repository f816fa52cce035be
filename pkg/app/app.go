package app

import (
	"log/slog"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/service/user"
	"github.com/amirasaad/ledger/pkg/store"
)

// Deps contains the infrastructure shared by entry points.
type Deps struct {
	Store  *store.MemoryStore
	Logger *slog.Logger
}

type App struct {
	Deps   *Deps
	Config *config.App
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:   deps,
		Config: cfg,
	}
}

// User returns a facade for owner bound to the application store.
func (a *App) User(owner string) *user.User {
	return user.New(account.Owner(owner), a.Deps.Store)
}
