package ports

import "github.com/stocklite/inventory-client/internal/core/domain"

// SessionStore is the single owner of authentication truth. Implementations
// keep an in-memory copy plus a durable one so the session survives a process
// restart; the two must be written and cleared together.
type SessionStore interface {
	// User returns the signed-in user, or nil when no session exists.
	User() *domain.User
	// Token returns the bearer token, or "" when no session exists.
	Token() string
	// IsAuthenticated reflects token presence only, never network state.
	IsAuthenticated() bool
	// SetSession replaces both the in-memory and durable copies.
	SetSession(user *domain.User, token string) error
	// Clear removes both copies atomically. A stale token with no user, or
	// the reverse, must never be observable.
	Clear() error
}
