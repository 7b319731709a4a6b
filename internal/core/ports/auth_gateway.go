package ports

import (
	"context"

	"github.com/stocklite/inventory-client/internal/core/domain"
)

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput is the registration payload. Password travels here and only
// here; it never appears on domain.User.
type RegisterInput struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// AuthPayload is returned by a successful login or register.
type AuthPayload struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// AuthGateway performs authentication calls against the backend. It is pure
// request/response: it never touches the SessionStore. Callers mutate the
// store only on a success result.
type AuthGateway interface {
	Login(ctx context.Context, creds Credentials) (*AuthPayload, error)
	Register(ctx context.Context, input RegisterInput) (*AuthPayload, error)
	// CurrentUser refreshes the identity behind the stored token. A failure
	// of any kind means the session can no longer be trusted.
	CurrentUser(ctx context.Context) (*domain.User, error)
}
