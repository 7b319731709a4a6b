package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/stocklite/inventory-client/internal/core/domain"
	"github.com/stocklite/inventory-client/internal/core/ports"
)

// lowStockThreshold is the quantity below which a product is flagged.
const lowStockThreshold = 10

// DashboardSummary is what the landing screen shows: per-entity counts plus
// the products running low.
type DashboardSummary struct {
	Products     int
	Categories   int
	Suppliers    int
	Transactions int
	LowStock     []domain.Product
}

// DashboardScreen aggregates the four collections into the landing summary.
type DashboardScreen struct {
	products     ports.ResourceService[domain.Product]
	categories   ports.ResourceService[domain.Category]
	suppliers    ports.ResourceService[domain.Supplier]
	transactions ports.ResourceService[domain.Transaction]
	log          zerolog.Logger

	mu      sync.Mutex
	summary DashboardSummary
	loaded  bool
}

func NewDashboardScreen(f *Screens) *DashboardScreen {
	return &DashboardScreen{
		products:     f.Products(),
		categories:   f.Categories(),
		suppliers:    f.Suppliers(),
		transactions: f.Transactions(),
		log:          f.log,
	}
}

// Load fetches all four collections. A failure on any of them aborts the
// refresh and leaves the previous summary in place.
func (d *DashboardScreen) Load(ctx context.Context) error {
	products, err := d.products.List(ctx, nil)
	if err != nil {
		d.log.Error().Err(err).Msg("dashboard: products fetch failed")
		return err
	}
	categories, err := d.categories.List(ctx, nil)
	if err != nil {
		d.log.Error().Err(err).Msg("dashboard: categories fetch failed")
		return err
	}
	suppliers, err := d.suppliers.List(ctx, nil)
	if err != nil {
		d.log.Error().Err(err).Msg("dashboard: suppliers fetch failed")
		return err
	}
	transactions, err := d.transactions.List(ctx, nil)
	if err != nil {
		d.log.Error().Err(err).Msg("dashboard: transactions fetch failed")
		return err
	}

	var low []domain.Product
	for _, p := range products {
		if p.Quantity < lowStockThreshold {
			low = append(low, p)
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.summary = DashboardSummary{
		Products:     len(products),
		Categories:   len(categories),
		Suppliers:    len(suppliers),
		Transactions: len(transactions),
		LowStock:     low,
	}
	d.loaded = true
	return nil
}

func (d *DashboardScreen) Summary() (DashboardSummary, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.summary, d.loaded
}
