package app

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/stocklite/inventory-client/internal/core/domain"
	"github.com/stocklite/inventory-client/internal/core/ports"
)

// LoginScreen drives the login form. Only a success result touches the
// session store; any failure stays on the form as an inline message.
type LoginScreen struct {
	shell *Shell
	log   zerolog.Logger

	mu         sync.Mutex
	submitting bool
	errMsg     string
}

func NewLoginScreen(shell *Shell, log zerolog.Logger) *LoginScreen {
	return &LoginScreen{shell: shell, log: log}
}

func (sc *LoginScreen) Submit(ctx context.Context, creds ports.Credentials) {
	sc.mu.Lock()
	if sc.submitting {
		sc.mu.Unlock()
		return
	}
	sc.submitting = true
	sc.errMsg = ""
	sc.mu.Unlock()

	payload, err := sc.shell.gateway.Login(ctx, creds)

	sc.mu.Lock()
	sc.submitting = false
	if err != nil {
		sc.errMsg = authMessage(err)
		sc.mu.Unlock()
		return
	}
	sc.mu.Unlock()

	if err := sc.shell.store.SetSession(payload.User, payload.Token); err != nil {
		sc.log.Error().Err(err).Msg("failed to persist session after login")
		sc.mu.Lock()
		sc.errMsg = "Could not save your session. Please try again."
		sc.mu.Unlock()
		return
	}
	sc.shell.NavigateTo(RouteDashboard)
}

func (sc *LoginScreen) ErrorMessage() string {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.errMsg
}

// RegisterScreen drives the registration form with the same success-only
// session mutation rule as login.
type RegisterScreen struct {
	shell *Shell
	log   zerolog.Logger

	mu         sync.Mutex
	submitting bool
	errMsg     string
}

func NewRegisterScreen(shell *Shell, log zerolog.Logger) *RegisterScreen {
	return &RegisterScreen{shell: shell, log: log}
}

func (sc *RegisterScreen) Submit(ctx context.Context, input ports.RegisterInput) {
	sc.mu.Lock()
	if sc.submitting {
		sc.mu.Unlock()
		return
	}
	sc.submitting = true
	sc.errMsg = ""
	sc.mu.Unlock()

	payload, err := sc.shell.gateway.Register(ctx, input)

	sc.mu.Lock()
	sc.submitting = false
	if err != nil {
		// Duplicate username/email arrives as a ValidationError; the form
		// stays put with the message and no navigation occurs.
		sc.errMsg = authMessage(err)
		sc.mu.Unlock()
		return
	}
	sc.mu.Unlock()

	if err := sc.shell.store.SetSession(payload.User, payload.Token); err != nil {
		sc.log.Error().Err(err).Msg("failed to persist session after register")
		sc.mu.Lock()
		sc.errMsg = "Could not save your session. Please try again."
		sc.mu.Unlock()
		return
	}
	sc.shell.NavigateTo(RouteDashboard)
}

func (sc *RegisterScreen) ErrorMessage() string {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.errMsg
}

// authMessage converts a gateway error into the inline form message.
func authMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return "Invalid email or password"
	}
	var te *domain.TransportError
	if errors.As(err, &te) {
		return "Could not reach the server. Please try again."
	}
	return "Something went wrong. Please try again."
}
