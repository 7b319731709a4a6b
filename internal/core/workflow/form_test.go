package workflow

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/stocklite/inventory-client/internal/core/domain"
	"github.com/stocklite/inventory-client/internal/core/ports"
)

type formStub struct {
	mu        sync.Mutex
	getFn     func(id string) (*domain.Product, error)
	createFn  func(p *domain.Product) (*domain.Product, error)
	createErr error
	updateErr error

	created []domain.Product
	updated map[string]domain.Product
}

func (s *formStub) List(context.Context, ports.Filters) ([]domain.Product, error) {
	return nil, nil
}
func (s *formStub) Get(_ context.Context, id string) (*domain.Product, error) {
	if s.getFn != nil {
		return s.getFn(id)
	}
	return nil, domain.ErrNotFound
}
func (s *formStub) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	fn := s.createFn
	s.mu.Unlock()
	if fn != nil {
		return fn(p)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, *p)
	out := *p
	out.ID = "assigned"
	return &out, nil
}
func (s *formStub) Update(_ context.Context, id string, p *domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	if s.updated == nil {
		s.updated = map[string]domain.Product{}
	}
	s.updated[id] = *p
	return p, nil
}
func (s *formStub) Delete(context.Context, string) error { return nil }

type memNav struct {
	mu     sync.Mutex
	routes []string
}

func (n *memNav) NavigateTo(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

func (n *memNav) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[len(n.routes)-1]
}

func validProduct() *domain.Product {
	return &domain.Product{Name: "Widget", SKU: "W-1", Price: 9.99, Quantity: 3}
}

func TestFormWorkflow_CreateModeSkipsLoading(t *testing.T) {
	w := NewFormWorkflow[domain.Product](&formStub{}, &memNav{}, "/products", zerolog.Nop())

	w.Mount(context.Background(), "")
	if w.Phase() != FormReady {
		t.Fatalf("expected FormReady in create mode, got %v", w.Phase())
	}
	if fields := w.Fields(); fields == nil || fields.Name != "" {
		t.Fatalf("expected empty default fields, got %+v", fields)
	}
}

func TestFormWorkflow_EditModeLoadsRecord(t *testing.T) {
	svc := &formStub{getFn: func(id string) (*domain.Product, error) {
		return &domain.Product{ID: id, Name: "Widget", SKU: "W-1"}, nil
	}}
	w := NewFormWorkflow[domain.Product](svc, &memNav{}, "/products", zerolog.Nop())

	w.Mount(context.Background(), "p1")
	if w.Phase() != FormReady {
		t.Fatalf("expected FormReady after load, got %v", w.Phase())
	}
	if fields := w.Fields(); fields.Name != "Widget" {
		t.Fatalf("expected loaded fields, got %+v", fields)
	}
}

func TestFormWorkflow_EditModeLoadFailure(t *testing.T) {
	w := NewFormWorkflow[domain.Product](&formStub{}, &memNav{}, "/products", zerolog.Nop())

	w.Mount(context.Background(), "missing")
	if w.Phase() != FormFailed {
		t.Fatalf("expected FormFailed, got %v", w.Phase())
	}
	if w.ErrorMessage() == "" {
		t.Fatalf("expected an error message on failed load")
	}
}

func TestFormWorkflow_SubmitValidatesRequiredFields(t *testing.T) {
	svc := &formStub{}
	w := NewFormWorkflow[domain.Product](svc, &memNav{}, "/products", zerolog.Nop())

	w.Mount(context.Background(), "")
	w.SetFields(&domain.Product{Price: 5}) // name and sku missing
	w.Submit(context.Background())

	if w.Phase() != FormReady {
		t.Fatalf("expected FormReady after local validation failure, got %v", w.Phase())
	}
	if msg := w.ErrorMessage(); !strings.Contains(msg, "name is required") {
		t.Fatalf("expected required-field message, got %q", msg)
	}
	if len(svc.created) != 0 {
		t.Fatalf("expected no create call on invalid form")
	}
}

func TestFormWorkflow_SubmitCreatesAndNavigates(t *testing.T) {
	svc := &formStub{}
	nav := &memNav{}
	w := NewFormWorkflow[domain.Product](svc, nav, "/products", zerolog.Nop())

	w.Mount(context.Background(), "")
	w.SetFields(validProduct())
	w.Submit(context.Background())

	if w.Phase() != FormDone {
		t.Fatalf("expected FormDone, got %v", w.Phase())
	}
	if len(svc.created) != 1 {
		t.Fatalf("expected one create call, got %d", len(svc.created))
	}
	if nav.last() != "/products" {
		t.Fatalf("expected navigation to the list screen, got %q", nav.last())
	}
}

func TestFormWorkflow_SubmitUpdatesWhenIDBound(t *testing.T) {
	svc := &formStub{getFn: func(id string) (*domain.Product, error) {
		return &domain.Product{ID: id, Name: "Widget", SKU: "W-1", Quantity: 1}, nil
	}}
	nav := &memNav{}
	w := NewFormWorkflow[domain.Product](svc, nav, "/products", zerolog.Nop())

	w.Mount(context.Background(), "p1")
	fields := w.Fields()
	fields.Quantity = 7
	w.Submit(context.Background())

	if len(svc.created) != 0 {
		t.Fatalf("expected no create call in edit mode")
	}
	if got, found := svc.updated["p1"]; !found || got.Quantity != 7 {
		t.Fatalf("expected update of p1 with quantity 7, got %+v", svc.updated)
	}
	if nav.last() != "/products" {
		t.Fatalf("expected navigation to the list screen, got %q", nav.last())
	}
}

func TestFormWorkflow_DismissDropsInFlightSubmit(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	svc := &formStub{createFn: func(p *domain.Product) (*domain.Product, error) {
		close(started)
		<-release
		out := *p
		out.ID = "assigned"
		return &out, nil
	}}
	nav := &memNav{}
	w := NewFormWorkflow[domain.Product](svc, nav, "/products", zerolog.Nop())

	w.Mount(context.Background(), "")
	w.SetFields(validProduct())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		w.Submit(context.Background())
	}()

	<-started
	w.Dismiss()
	close(release)
	wg.Wait()

	if w.Phase() != FormIdle {
		t.Fatalf("expected the dismissed form to stay idle, got %v", w.Phase())
	}
	if nav.last() != "" {
		t.Fatalf("expected no navigation after dismissal, got %q", nav.last())
	}
}

func TestFormWorkflow_ServerRejectionKeepsFormPopulated(t *testing.T) {
	svc := &formStub{createErr: &domain.ValidationError{Message: "SKU already exists"}}
	nav := &memNav{}
	w := NewFormWorkflow[domain.Product](svc, nav, "/products", zerolog.Nop())

	w.Mount(context.Background(), "")
	w.SetFields(validProduct())
	w.Submit(context.Background())

	if w.Phase() != FormReady {
		t.Fatalf("expected FormReady after rejection, got %v", w.Phase())
	}
	if w.ErrorMessage() != "SKU already exists" {
		t.Fatalf("expected the server message inline, got %q", w.ErrorMessage())
	}
	if fields := w.Fields(); fields == nil || fields.Name != "Widget" {
		t.Fatalf("expected fields preserved for correction, got %+v", fields)
	}
	if nav.last() != "" {
		t.Fatalf("expected no navigation on failure, got %q", nav.last())
	}

	// Resubmit without reloading once the conflict is fixed.
	svc.createErr = nil
	w.Fields().SKU = "W-2"
	w.Submit(context.Background())
	if w.Phase() != FormDone {
		t.Fatalf("expected FormDone after resubmit, got %v", w.Phase())
	}
}
