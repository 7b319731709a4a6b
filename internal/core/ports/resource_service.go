package ports

import "context"

// Filters are the optional query parameters of a list call. Keys with empty
// values are omitted from the request entirely, never sent as empty strings.
type Filters map[string]string

// ResourceService is the uniform contract every entity collection satisfies:
// list/get/create/update/delete against one endpoint. No operation retries;
// each call is a single attempt whose error is handed back to the caller.
type ResourceService[T any] interface {
	List(ctx context.Context, filters Filters) ([]T, error)
	// Get fails with domain.ErrNotFound when id does not resolve.
	Get(ctx context.Context, id string) (*T, error)
	// Create returns the record with server-assigned id and timestamps, or a
	// domain.ValidationError on constraint violation.
	Create(ctx context.Context, data *T) (*T, error)
	Update(ctx context.Context, id string, data *T) (*T, error)
	// Delete is NOT idempotent from the server's view: deleting an already
	// removed id reports domain.ErrNotFound rather than succeeding silently.
	Delete(ctx context.Context, id string) error
}
