package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/stocklite/inventory-client/internal/core/domain"
	"github.com/stocklite/inventory-client/internal/core/ports"
)

// AuthGateway performs login/register/identity-refresh over the envelope API.
// It holds no state: session mutation stays with the caller, which only acts
// on a success result.
type AuthGateway struct {
	c *Client
}

func NewAuthGateway(c *Client) *AuthGateway {
	return &AuthGateway{c: c}
}

var _ ports.AuthGateway = (*AuthGateway)(nil)

func (g *AuthGateway) Login(ctx context.Context, creds ports.Credentials) (*ports.AuthPayload, error) {
	data, err := g.c.do(ctx, http.MethodPost, "/auth/login", "auth", "login", nil, creds)
	if err != nil {
		// A 401 here is a rejected credential pair, not an expired session.
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	var payload ports.AuthPayload
	if err := decode(data, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (g *AuthGateway) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthPayload, error) {
	data, err := g.c.do(ctx, http.MethodPost, "/auth/register", "auth", "register", nil, input)
	if err != nil {
		return nil, err
	}
	var payload ports.AuthPayload
	if err := decode(data, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (g *AuthGateway) CurrentUser(ctx context.Context) (*domain.User, error) {
	data, err := g.c.do(ctx, http.MethodGet, "/auth/me", "auth", "me", nil, nil)
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := decode(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
