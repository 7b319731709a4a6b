package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/stocklite/inventory-client/internal/core/domain"
	"github.com/stocklite/inventory-client/internal/core/ports"
)

func TestDashboard_SummaryCounts(t *testing.T) {
	backend, url := startBackend(t)
	a := newTestApp(t, url, filepath.Join(t.TempDir(), "session.json"), backend)
	a.shell.Start(context.Background())
	NewLoginScreen(a.shell, zerolog.Nop()).
		Submit(context.Background(), ports.Credentials{Email: "alice@example.com", Password: "s3cret"})

	backend.SeedProduct(domain.Product{Name: "Widget", SKU: "W-1", Quantity: 20})
	backend.SeedProduct(domain.Product{Name: "Gadget", SKU: "G-1", Quantity: 3})
	ctx := context.Background()
	if _, err := a.screens.Categories().Create(ctx, &domain.Category{Name: "Tools"}); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	if _, err := a.screens.Suppliers().Create(ctx, &domain.Supplier{Name: "Acme"}); err != nil {
		t.Fatalf("seed supplier: %v", err)
	}

	d := NewDashboardScreen(a.screens)
	if _, loaded := d.Summary(); loaded {
		t.Fatalf("expected no summary before load")
	}
	if err := d.Load(ctx); err != nil {
		t.Fatalf("dashboard load failed: %v", err)
	}

	summary, loaded := d.Summary()
	if !loaded {
		t.Fatalf("expected summary after load")
	}
	if summary.Products != 2 || summary.Categories != 1 || summary.Suppliers != 1 || summary.Transactions != 0 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if len(summary.LowStock) != 1 || summary.LowStock[0].Name != "Gadget" {
		t.Fatalf("expected only Gadget below threshold, got %+v", summary.LowStock)
	}
}
