package workflow

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/stocklite/inventory-client/internal/core/ports"
)

// SessionState is the guard's view of the session.
type SessionState int

const (
	// Checking is the initial state: a durable token may exist but the
	// identity behind it has not been confirmed yet.
	Checking SessionState = iota
	Authenticated
	Unauthenticated
)

func (s SessionState) String() string {
	switch s {
	case Checking:
		return "checking"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Polarity selects which side of the session a route is reserved for.
// One parameterized guard replaces the source's two copy-pasted components.
type Polarity int

const (
	// RequireAuthenticated renders children only for a signed-in session.
	RequireAuthenticated Polarity = iota
	// RequireAnonymous renders children only when nobody is signed in.
	RequireAnonymous
)

// Decision is the guard's verdict for a route.
type Decision int

const (
	// ShowPlaceholder: the startup check has not resolved; render a neutral
	// loading view, never a redirect.
	ShowPlaceholder Decision = iota
	Render
	Redirect
)

// SessionGuard gates navigation on session state. Exactly one Checking
// resolution happens per application session; after that the state tracks
// the store directly, so login and logout take effect without re-running
// the identity check.
type SessionGuard struct {
	store   ports.SessionStore
	gateway ports.AuthGateway
	log     zerolog.Logger

	once     sync.Once
	mu       sync.Mutex
	resolved bool
}

func NewSessionGuard(store ports.SessionStore, gateway ports.AuthGateway, log zerolog.Logger) *SessionGuard {
	return &SessionGuard{store: store, gateway: gateway, log: log}
}

// Resolve performs the startup identity check. A durable token is only
// trusted after CurrentUser confirms it; any failure on that call clears the
// store and lands in Unauthenticated. Safe to call more than once, from any
// goroutine; the identity check runs exactly once and late callers block
// until it finishes.
func (g *SessionGuard) Resolve(ctx context.Context) SessionState {
	g.once.Do(func() {
		state := Unauthenticated
		if g.store.IsAuthenticated() {
			user, err := g.gateway.CurrentUser(ctx)
			if err != nil {
				// Handled locally: forced logout, never surfaced to the user.
				g.log.Info().Err(err).Msg("identity refresh failed, clearing session")
				if clearErr := g.store.Clear(); clearErr != nil {
					g.log.Error().Err(clearErr).Msg("failed to clear session store")
				}
			} else {
				if err := g.store.SetSession(user, g.store.Token()); err != nil {
					g.log.Error().Err(err).Msg("failed to refresh stored user")
				}
				state = Authenticated
			}
		}

		g.mu.Lock()
		g.resolved = true
		g.mu.Unlock()

		g.log.Debug().Stringer("state", state).Msg("session resolved")
	})
	return g.State()
}

// State returns Checking until Resolve has run, then follows the store.
func (g *SessionGuard) State() SessionState {
	g.mu.Lock()
	resolved := g.resolved
	g.mu.Unlock()

	if !resolved {
		return Checking
	}
	if g.store.IsAuthenticated() {
		return Authenticated
	}
	return Unauthenticated
}

// Evaluate decides what a route with the given polarity should do right now.
func (g *SessionGuard) Evaluate(p Polarity) Decision {
	switch g.State() {
	case Checking:
		return ShowPlaceholder
	case Authenticated:
		if p == RequireAuthenticated {
			return Render
		}
		return Redirect
	default:
		if p == RequireAnonymous {
			return Render
		}
		return Redirect
	}
}
