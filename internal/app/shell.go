package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/stocklite/inventory-client/internal/core/ports"
	"github.com/stocklite/inventory-client/internal/core/workflow"
)

// Shell owns the current route and the session lifecycle around it. It is
// the app's Navigator: every navigation passes through the guard, so a
// protected route can never render without a confirmed session.
type Shell struct {
	store   ports.SessionStore
	gateway ports.AuthGateway
	guard   *workflow.SessionGuard
	log     zerolog.Logger

	mu    sync.Mutex
	route string
}

func NewShell(store ports.SessionStore, gateway ports.AuthGateway, guard *workflow.SessionGuard, log zerolog.Logger) *Shell {
	return &Shell{store: store, gateway: gateway, guard: guard, log: log}
}

var _ ports.Navigator = (*Shell)(nil)

// Start runs the one-time startup identity check, then lands on the default
// route. Until Resolve returns, Placeholder reports true and nothing
// redirects.
func (s *Shell) Start(ctx context.Context) {
	s.guard.Resolve(ctx)
	s.NavigateTo(RouteDashboard)
}

// NavigateTo applies the guard's verdict for the target route. While the
// session is still resolving no route is entered and no redirect fires.
func (s *Shell) NavigateTo(route string) {
	switch s.guard.Evaluate(routePolarity(route)) {
	case workflow.ShowPlaceholder:
		s.log.Debug().Str("route", route).Msg("navigation deferred, session still resolving")
		return
	case workflow.Render:
		s.setRoute(route)
	case workflow.Redirect:
		if routePolarity(route) == workflow.RequireAuthenticated {
			s.setRoute(RouteLogin)
		} else {
			s.setRoute(RouteDashboard)
		}
	}
}

func (s *Shell) setRoute(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.route != route {
		s.log.Debug().Str("from", s.route).Str("to", route).Msg("navigate")
	}
	s.route = route
}

// CurrentRoute returns the active route, or "" before the first navigation.
func (s *Shell) CurrentRoute() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.route
}

// Placeholder reports whether screens should render the neutral loading view.
func (s *Shell) Placeholder() bool {
	return s.guard.State() == workflow.Checking
}

// Logout clears both session copies and returns to the login screen. There is
// no network call: the backend keeps no session state to tear down.
func (s *Shell) Logout() {
	if err := s.store.Clear(); err != nil {
		s.log.Error().Err(err).Msg("failed to clear session on logout")
		return
	}
	s.NavigateTo(RouteLogin)
}
