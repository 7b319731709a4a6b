package apitest

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/stocklite/inventory-client/internal/core/domain"
)

// hooks captures the per-entity behavior the generic CRUD handlers need.
type hooks[T any] struct {
	label     string
	id        func(*T) *string
	createdAt func(*T) *time.Time
	// match applies the list filters; empty values never reach it.
	match func(*T, map[string]string) bool
	// conflict returns a rejection message, or "" to accept. selfID is the
	// record being updated so it can be excluded from uniqueness checks.
	conflict func(s *Server, record *T, selfID string) string
}

func (s *Server) registerResources() {
	registerResource(s, "products", s.products, hooks[domain.Product]{
		label:     "Product",
		id:        func(p *domain.Product) *string { return &p.ID },
		createdAt: func(p *domain.Product) *time.Time { return &p.CreatedAt },
		match: func(p *domain.Product, q map[string]string) bool {
			if search, found := q["search"]; found {
				if !containsFold(p.Name, search) && !containsFold(p.SKU, search) {
					return false
				}
			}
			return true
		},
		conflict: func(s *Server, p *domain.Product, selfID string) string {
			for id, other := range s.products {
				if id != selfID && strings.EqualFold(other.SKU, p.SKU) {
					return "SKU already exists"
				}
			}
			return ""
		},
	})

	registerResource(s, "categories", s.categories, hooks[domain.Category]{
		label:     "Category",
		id:        func(cat *domain.Category) *string { return &cat.ID },
		createdAt: func(cat *domain.Category) *time.Time { return &cat.CreatedAt },
		match: func(cat *domain.Category, q map[string]string) bool {
			if search, found := q["search"]; found && !containsFold(cat.Name, search) {
				return false
			}
			return true
		},
	})

	registerResource(s, "suppliers", s.suppliers, hooks[domain.Supplier]{
		label:     "Supplier",
		id:        func(sup *domain.Supplier) *string { return &sup.ID },
		createdAt: func(sup *domain.Supplier) *time.Time { return &sup.CreatedAt },
		match: func(sup *domain.Supplier, q map[string]string) bool {
			if search, found := q["search"]; found && !containsFold(sup.Name, search) {
				return false
			}
			return true
		},
	})

	registerResource(s, "transactions", s.transactions, hooks[domain.Transaction]{
		label:     "Transaction",
		id:        func(t *domain.Transaction) *string { return &t.ID },
		createdAt: func(t *domain.Transaction) *time.Time { return &t.CreatedAt },
		match: func(t *domain.Transaction, q map[string]string) bool {
			if search, found := q["search"]; found && !containsFold(t.Notes, search) {
				return false
			}
			if productID, found := q["productId"]; found && t.ProductID != productID {
				return false
			}
			if typ, found := q["type"]; found && string(t.Type) != typ {
				return false
			}
			return true
		},
		conflict: func(s *Server, t *domain.Transaction, _ string) string {
			if _, found := s.products[t.ProductID]; !found {
				return "Product not found"
			}
			return ""
		},
	})
}

// registerResource mounts the uniform CRUD surface for one collection.
func registerResource[T any](s *Server, name string, store map[string]*T, h hooks[T]) {
	g := s.e.Group("/"+name, s.requireAuth)

	g.GET("", func(c echo.Context) error {
		filters := map[string]string{}
		for key, values := range c.QueryParams() {
			if len(values) > 0 && values[0] != "" {
				filters[key] = values[0]
			}
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		items := make([]T, 0, len(store))
		for _, record := range store {
			if h.match == nil || h.match(record, filters) {
				items = append(items, *record)
			}
		}
		sort.Slice(items, func(i, j int) bool {
			a, b := items[i], items[j]
			if at, bt := *h.createdAt(&a), *h.createdAt(&b); !at.Equal(bt) {
				return at.Before(bt)
			}
			return *h.id(&a) < *h.id(&b)
		})
		return ok(c, http.StatusOK, items)
	})

	g.GET("/:id", func(c echo.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		record, found := store[c.Param("id")]
		if !found {
			return fail(c, http.StatusNotFound, h.label+" not found")
		}
		return ok(c, http.StatusOK, *record)
	})

	g.POST("", func(c echo.Context) error {
		record := new(T)
		if err := c.Bind(record); err != nil {
			return fail(c, http.StatusBadRequest, "invalid payload")
		}
		if err := s.validate.Struct(record); err != nil {
			return fail(c, http.StatusBadRequest, validationMessage(err))
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if h.conflict != nil {
			if msg := h.conflict(s, record, ""); msg != "" {
				return fail(c, http.StatusBadRequest, msg)
			}
		}
		*h.id(record) = uuid.NewString()
		*h.createdAt(record) = time.Now().UTC()
		store[*h.id(record)] = record
		return ok(c, http.StatusCreated, *record)
	})

	g.PUT("/:id", func(c echo.Context) error {
		record := new(T)
		if err := c.Bind(record); err != nil {
			return fail(c, http.StatusBadRequest, "invalid payload")
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		id := c.Param("id")
		existing, found := store[id]
		if !found {
			return fail(c, http.StatusNotFound, h.label+" not found")
		}
		// Server-assigned fields are never client-writable.
		*h.id(record) = id
		*h.createdAt(record) = *h.createdAt(existing)

		if err := s.validate.Struct(record); err != nil {
			return fail(c, http.StatusBadRequest, validationMessage(err))
		}
		if h.conflict != nil {
			if msg := h.conflict(s, record, id); msg != "" {
				return fail(c, http.StatusBadRequest, msg)
			}
		}
		store[id] = record
		return ok(c, http.StatusOK, *record)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		id := c.Param("id")
		if _, found := store[id]; !found {
			return fail(c, http.StatusNotFound, h.label+" not found")
		}
		delete(store, id)
		return c.JSON(http.StatusOK, map[string]any{"success": true, "message": h.label + " deleted"})
	})
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
