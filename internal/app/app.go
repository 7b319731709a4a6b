package app

import (
	"github.com/stocklite/inventory-client/internal/core/ports"
	"github.com/stocklite/inventory-client/internal/core/workflow"
	"github.com/stocklite/inventory-client/internal/infrastructure/api"
	"github.com/stocklite/inventory-client/internal/infrastructure/config"
	"github.com/stocklite/inventory-client/internal/infrastructure/session"
	"github.com/stocklite/inventory-client/pkg/logger"
)

// App is the assembled client: one session store, one gateway, one guard, one
// shell, and the screen factory. Dependency edges are explicit; nothing here
// reaches for ambient globals.
type App struct {
	Store   ports.SessionStore
	Gateway ports.AuthGateway
	Guard   *workflow.SessionGuard
	Shell   *Shell
	Screens *Screens
}

// New wires the full stack from configuration. It also initialises the
// process logger; pretty console output is reserved for development.
func New(cfg *config.Config, confirm ports.Confirmer, notify ports.Notifier) (*App, error) {
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	sessionFile, err := cfg.ResolveSessionFile()
	if err != nil {
		return nil, err
	}
	store := session.NewFileStore(sessionFile, log)
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, store, log)
	gateway := api.NewAuthGateway(client)
	guard := workflow.NewSessionGuard(store, gateway, log)
	shell := NewShell(store, gateway, guard, log)

	return &App{
		Store:   store,
		Gateway: gateway,
		Guard:   guard,
		Shell:   shell,
		Screens: NewScreens(client, shell, confirm, notify, log),
	}, nil
}
