package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stocklite/inventory-client/internal/core/domain"
	"github.com/stocklite/inventory-client/internal/core/ports"
)

// Resource is the generic service for one collection endpoint
// (/products, /categories, /suppliers, /transactions).
type Resource[T any] struct {
	c    *Client
	name string
}

func NewResource[T any](c *Client, name string) *Resource[T] {
	return &Resource[T]{c: c, name: name}
}

var _ ports.ResourceService[domain.Product] = (*Resource[domain.Product])(nil)

func (r *Resource[T]) List(ctx context.Context, filters ports.Filters) ([]T, error) {
	query := url.Values{}
	for k, v := range filters {
		// Absent or empty filters are omitted, not sent as empty strings.
		if v != "" {
			query.Set(k, v)
		}
	}
	data, err := r.c.do(ctx, http.MethodGet, "/"+r.name, r.name, "list", query, nil)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := decode(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	data, err := r.c.do(ctx, http.MethodGet, "/"+r.name+"/"+id, r.name, "get", nil, nil)
	if err != nil {
		return nil, err
	}
	var item T
	if err := decode(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Resource[T]) Create(ctx context.Context, record *T) (*T, error) {
	data, err := r.c.do(ctx, http.MethodPost, "/"+r.name, r.name, "create", nil, record)
	if err != nil {
		return nil, err
	}
	var item T
	if err := decode(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Resource[T]) Update(ctx context.Context, id string, record *T) (*T, error) {
	data, err := r.c.do(ctx, http.MethodPut, "/"+r.name+"/"+id, r.name, "update", nil, record)
	if err != nil {
		return nil, err
	}
	var item T
	if err := decode(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	_, err := r.c.do(ctx, http.MethodDelete, "/"+r.name+"/"+id, r.name, "delete", nil, nil)
	return err
}
