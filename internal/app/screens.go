package app

import (
	"github.com/rs/zerolog"

	"github.com/stocklite/inventory-client/internal/core/domain"
	"github.com/stocklite/inventory-client/internal/core/ports"
	"github.com/stocklite/inventory-client/internal/core/workflow"
	"github.com/stocklite/inventory-client/internal/infrastructure/api"
)

// Screens builds the per-entity list and form workflows. Every screen gets
// its own workflow instance: no list or form state is shared across screens.
type Screens struct {
	client  *api.Client
	shell   *Shell
	confirm ports.Confirmer
	notify  ports.Notifier
	log     zerolog.Logger
}

func NewScreens(client *api.Client, shell *Shell, confirm ports.Confirmer, notify ports.Notifier, log zerolog.Logger) *Screens {
	return &Screens{client: client, shell: shell, confirm: confirm, notify: notify, log: log}
}

func (f *Screens) ProductList() *workflow.ListWorkflow[domain.Product] {
	return workflow.NewListWorkflow(f.Products(), f.confirm, f.notify, f.log)
}

func (f *Screens) ProductForm() *workflow.FormWorkflow[domain.Product] {
	return workflow.NewFormWorkflow(f.Products(), f.shell, RouteProducts, f.log)
}

func (f *Screens) CategoryList() *workflow.ListWorkflow[domain.Category] {
	return workflow.NewListWorkflow(f.Categories(), f.confirm, f.notify, f.log)
}

func (f *Screens) CategoryForm() *workflow.FormWorkflow[domain.Category] {
	return workflow.NewFormWorkflow(f.Categories(), f.shell, RouteCategories, f.log)
}

func (f *Screens) SupplierList() *workflow.ListWorkflow[domain.Supplier] {
	return workflow.NewListWorkflow(f.Suppliers(), f.confirm, f.notify, f.log)
}

func (f *Screens) SupplierForm() *workflow.FormWorkflow[domain.Supplier] {
	return workflow.NewFormWorkflow(f.Suppliers(), f.shell, RouteSuppliers, f.log)
}

func (f *Screens) TransactionList() *workflow.ListWorkflow[domain.Transaction] {
	return workflow.NewListWorkflow(f.Transactions(), f.confirm, f.notify, f.log)
}

func (f *Screens) TransactionForm() *workflow.FormWorkflow[domain.Transaction] {
	return workflow.NewFormWorkflow(f.Transactions(), f.shell, RouteTransactions, f.log)
}

func (f *Screens) Products() ports.ResourceService[domain.Product] {
	return api.NewResource[domain.Product](f.client, "products")
}

func (f *Screens) Categories() ports.ResourceService[domain.Category] {
	return api.NewResource[domain.Category](f.client, "categories")
}

func (f *Screens) Suppliers() ports.ResourceService[domain.Supplier] {
	return api.NewResource[domain.Supplier](f.client, "suppliers")
}

func (f *Screens) Transactions() ports.ResourceService[domain.Transaction] {
	return api.NewResource[domain.Transaction](f.client, "transactions")
}
