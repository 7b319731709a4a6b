package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stocklite/inventory-client/internal/infrastructure/config"
	"github.com/stocklite/inventory-client/pkg/logger"
)

func TestNew_WiresFullStack(t *testing.T) {
	logger.Reset()
	t.Cleanup(logger.Reset)

	_, url := startBackend(t)
	cfg := &config.Config{
		APIBaseURL:  url,
		Env:         "test",
		LogLevel:    "error",
		SessionFile: filepath.Join(t.TempDir(), "session.json"),
	}

	a, err := New(cfg, confirmAll{}, noopNotify{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if a.Store == nil || a.Gateway == nil || a.Guard == nil || a.Shell == nil || a.Screens == nil {
		t.Fatalf("expected every component wired, got %+v", a)
	}

	// New owns logger initialisation, so Get must work afterwards.
	log := logger.Get()
	log.Debug().Msg("stack assembled")

	a.Shell.Start(context.Background())
	if got := a.Shell.CurrentRoute(); got != RouteLogin {
		t.Fatalf("expected login for a fresh install, got %q", got)
	}
}
